package formula

import (
	"fmt"
	"strconv"

	"github.com/kalexmills/cellgraph/position"
)

// parse parses the full lexeme stream into a single Expr, failing if any
// input remains afterward.
func parse(tokens []lexeme) (Expr, error) {
	expr, rest, err := parseTerm(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: unexpected trailing input", ErrParse)
	}
	return expr, nil
}

// parseTerm parses addition and subtraction, the lowest-precedence level.
func parseTerm(tokens []lexeme) (Expr, []lexeme, error) {
	return parseBinary(tokens, map[Token]bool{TokenAdd: true, TokenSub: true}, parseFactor)
}

// parseFactor parses multiplication and division.
func parseFactor(tokens []lexeme) (Expr, []lexeme, error) {
	return parseBinary(tokens, map[Token]bool{TokenMul: true, TokenDiv: true}, parseUnary)
}

func parseBinary(tokens []lexeme, ops map[Token]bool, next func([]lexeme) (Expr, []lexeme, error)) (Expr, []lexeme, error) {
	x, rest, err := next(tokens)
	if err != nil {
		return nil, nil, err
	}
	for len(rest) > 0 && rest[0].kind == lexOp && ops[rest[0].op] {
		op := rest[0].op
		y, after, err := next(rest[1:])
		if err != nil {
			return nil, nil, err
		}
		x = BinaryExpr{X: x, Op: op, Y: y}
		rest = after
	}
	return x, rest, nil
}

// parseUnary parses a leading unary minus, folding a negated literal into a
// single ConstExpr.
func parseUnary(tokens []lexeme) (Expr, []lexeme, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("%w: expected an expression, found nothing", ErrParse)
	}
	if tokens[0].kind == lexOp && tokens[0].op == TokenSub {
		x, rest, err := parseUnary(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		if c, ok := x.(ConstExpr); ok {
			return ConstExpr{Value: -c.Value}, rest, nil
		}
		return UnaryExpr{X: x, Op: TokenSub}, rest, nil
	}
	return parsePrimary(tokens)
}

// parsePrimary parses literals, cell references, and parenthesized
// sub-expressions.
func parsePrimary(tokens []lexeme) (Expr, []lexeme, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("%w: expected an expression, found nothing", ErrParse)
	}
	tok := tokens[0]
	switch {
	case tok.kind == lexNumber:
		val, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid numeric literal %q", ErrParse, tok.text)
		}
		return ConstExpr{Value: val}, tokens[1:], nil
	case tok.kind == lexIdent:
		// Bounds are a sheet-resolution concern, not a grammar concern; see
		// position.ParseUnbounded.
		pos, err := position.ParseUnbounded(tok.text)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid cell reference %q", ErrParse, tok.text)
		}
		return CellRefExpr{Ref: pos}, tokens[1:], nil
	case tok.kind == lexOp && tok.op == TokenLPar:
		expr, rest, err := parseTerm(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		if len(rest) == 0 || rest[0].kind != lexOp || rest[0].op != TokenRPar {
			return nil, nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		return expr, rest[1:], nil
	}
	return nil, nil, fmt.Errorf("%w: unexpected token", ErrParse)
}
