package formula

import "strconv"

// atomPrec is the binding strength of an atom (literal, cell reference, or
// an already-parenthesized/unary expression) — higher than any binary
// operator, so atoms never need parenthesizing as a child.
const atomPrec = 3

// sprint reprints expr canonically: minimal whitespace, redundant
// parentheses collapsed.
func sprint(expr Expr) string {
	switch e := expr.(type) {
	case ConstExpr:
		return formatNumber(e.Value)
	case CellRefExpr:
		return e.Ref.String()
	case UnaryExpr:
		return "-" + wrapChild(e.X, atomPrec, false)
	case BinaryExpr:
		prec := precedence(e.Op)
		left := wrapChild(e.X, prec, false)
		// The right operand of a left-associative, non-commutative operator
		// (- or /) needs parens even at equal precedence: A1-(B1-C1) is not
		// the same as A1-B1-C1.
		rightNeedsEqualWrap := e.Op == TokenSub || e.Op == TokenDiv
		right := wrapChild(e.Y, prec, rightNeedsEqualWrap)
		return left + string(e.Op) + right
	}
	return ""
}

func precOf(expr Expr) int {
	if b, ok := expr.(BinaryExpr); ok {
		return precedence(b.Op)
	}
	return atomPrec
}

func wrapChild(child Expr, parentPrec int, wrapOnEqual bool) string {
	s := sprint(child)
	cp := precOf(child)
	if cp < parentPrec || (wrapOnEqual && cp == parentPrec) {
		return "(" + s + ")"
	}
	return s
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
