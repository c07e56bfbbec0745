package formula

import "math"

// eval evaluates expr against ref, propagating the first Error encountered
// (matching the original evaluator: an error raised while computing a
// sub-expression short-circuits the rest of the expression).
func eval(expr Expr, ref Referencer) (float64, *Error) {
	switch e := expr.(type) {
	case ConstExpr:
		return e.Value, nil
	case CellRefExpr:
		return ref.Value(e.Ref)
	case UnaryExpr:
		x, err := eval(e.X, ref)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case BinaryExpr:
		x, err := eval(e.X, ref)
		if err != nil {
			return 0, err
		}
		y, err := eval(e.Y, ref)
		if err != nil {
			return 0, err
		}
		var result float64
		switch e.Op {
		case TokenAdd:
			result = x + y
		case TokenSub:
			result = x - y
		case TokenMul:
			result = x * y
		case TokenDiv:
			if y == 0 {
				return 0, &Error{Kind: KindArithm}
			}
			result = x / y
		}
		if math.IsInf(result, 0) || math.IsNaN(result) {
			return 0, &Error{Kind: KindArithm}
		}
		return result, nil
	}
	return 0, nil // unreachable: parse never produces any other Expr kind
}
