package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders e as an ordinary infix arithmetic expression, used for
// diagnostics and CLI output rather than round-tripping.
func (c *Cell) String() string {
	var sb strings.Builder
	writeExpr(&sb, c)

	return sb.String()
}

func writeExpr(sb *strings.Builder, e *Cell) {
	switch e.kind {
	case Constant:
		sb.WriteString(strconv.FormatFloat(e.c, 'g', -1, 64))
	case RealConstant:
		fmt.Fprintf(sb, "[%g, %g]", e.rcLo, e.rcHi)
	case Var:
		sb.WriteString(e.v.Name())
	case NaN:
		sb.WriteString("NaN")
	case KindAdd:
		sb.WriteByte('(')

		first := true
		if e.addConst != 0 || len(e.addTerms) == 0 {
			sb.WriteString(strconv.FormatFloat(e.addConst, 'g', -1, 64))
			first = false
		}

		for _, t := range e.addTerms {
			if !first {
				sb.WriteString(" + ")
			}

			first = false
			fmt.Fprintf(sb, "%g*%s", t.Coeff, t.Term.String())
		}

		sb.WriteByte(')')
	case KindMul:
		sb.WriteByte('(')
		fmt.Fprintf(sb, "%g", e.mulConst)

		for _, t := range e.mulTerms {
			sb.WriteString(" * ")

			if t.Exp.kind == Constant && t.Exp.c == 1 {
				sb.WriteString(t.Base.String())
			} else {
				fmt.Fprintf(sb, "%s^%s", t.Base.String(), t.Exp.String())
			}
		}

		sb.WriteByte(')')
	case KindDiv:
		fmt.Fprintf(sb, "(%s / %s)", e.args[0], e.args[1])
	case KindPow:
		fmt.Fprintf(sb, "(%s^%s)", e.args[0], e.args[1])
	case KindAtan2:
		fmt.Fprintf(sb, "atan2(%s, %s)", e.args[0], e.args[1])
	case KindMin:
		fmt.Fprintf(sb, "min(%s, %s)", e.args[0], e.args[1])
	case KindMax:
		fmt.Fprintf(sb, "max(%s, %s)", e.args[0], e.args[1])
	case KindIfThenElse:
		fmt.Fprintf(sb, "ite(%s %s %s, %s, %s)", e.cond.Lhs, e.cond.Kind, e.cond.Rhs, e.args[0], e.args[1])
	case UninterpretedFunction:
		sb.WriteString(e.ufName)
		sb.WriteByte('(')

		for i, a := range e.args {
			if i != 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(a.String())
		}

		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "%s(%s)", strings.ToLower(e.kind.String()), e.args[0])
	}
}
