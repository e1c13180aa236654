package contractor

// UnsupportedFormulaError reports that a formula cannot be turned into an
// interval contractor: either it is not a relational atom, or it is Neq,
// which has no sound interval target (no single interval excludes exactly
// one point, so Neq contracts nothing).
type UnsupportedFormulaError struct {
	Detail string
}

func (e *UnsupportedFormulaError) Error() string {
	return "contractor: " + e.Detail
}
