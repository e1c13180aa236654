package icp

import "github.com/dreal-go/dreal/pkg/box"

// fillUp seeds the parallel search's shared stack: starting from one
// already-contracted box, it repeatedly bisects every box on its
// max-diameter dimension, doubling the working set each round, until it
// has at least target boxes or no box in the set has a bisectable
// dimension left (a single, already maximally-degenerate box).
func fillUp(b box.Box, target int) []box.Box {
	boxes := []box.Box{b}

	for len(boxes) < target {
		next := make([]box.Box, 0, len(boxes)*2)
		progressed := false

		for _, bx := range boxes {
			idx, ok := bx.MaxDiamIndex(bisectableIndices(bx))
			if !ok {
				next = append(next, bx)
				continue
			}

			split := bx.Bisect(idx)
			next = append(next, split.Left, split.Right)
			progressed = true
		}

		boxes = next

		if !progressed {
			break
		}
	}

	return boxes
}

func bisectableIndices(bx box.Box) []uint {
	idxs := make([]uint, 0, bx.Size())

	for i := uint(0); i < bx.Size(); i++ {
		if bx.At(i).IsBisectable() {
			idxs = append(idxs, i)
		}
	}

	return idxs
}
