package formula

import "github.com/kalexmills/cellgraph/position"

// the model used here for representing parse trees is inspired by the ast
// package in Go's standard library, the same way expr.go in the original
// spreadsheet package was.

// Expr is a node of a parsed formula expression.
type Expr interface {
	isExpr()
}

// BinaryExpr is a binary operation: X Op Y.
type BinaryExpr struct {
	X  Expr
	Op Token
	Y  Expr
}

// UnaryExpr is a unary operation: Op X. Only TokenSub (negation) is used.
type UnaryExpr struct {
	X  Expr
	Op Token
}

// ConstExpr is a numeric literal.
type ConstExpr struct {
	Value float64
}

// CellRefExpr is a reference to another cell by position.
type CellRefExpr struct {
	Ref position.Position
}

func (BinaryExpr) isExpr()  {}
func (UnaryExpr) isExpr()   {}
func (ConstExpr) isExpr()   {}
func (CellRefExpr) isExpr() {}

// Token identifies an operator or punctuation mark in the grammar.
type Token string

const (
	TokenAdd  Token = "+"
	TokenSub  Token = "-"
	TokenMul  Token = "*"
	TokenDiv  Token = "/"
	TokenLPar Token = "("
	TokenRPar Token = ")"
)

// precedence groups operators by binding strength; higher binds tighter.
func precedence(op Token) int {
	switch op {
	case TokenAdd, TokenSub:
		return 1
	case TokenMul, TokenDiv:
		return 2
	}
	return 0
}

// referencedCells walks expr collecting cell references in first-appearance
// order, deduplicated.
func referencedCells(expr Expr) []position.Position {
	var out []position.Position
	seen := make(map[position.Position]struct{})
	var walk func(Expr)
	walk = func(e Expr) {
		switch e := e.(type) {
		case BinaryExpr:
			walk(e.X)
			walk(e.Y)
		case UnaryExpr:
			walk(e.X)
		case ConstExpr:
		case CellRefExpr:
			if _, ok := seen[e.Ref]; !ok {
				seen[e.Ref] = struct{}{}
				out = append(out, e.Ref)
			}
		}
	}
	walk(expr)
	return out
}
