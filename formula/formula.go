package formula

import "github.com/kalexmills/cellgraph/position"

// Referencer resolves the value of another cell during evaluation. Sheet
// implements this so that a Formula never imports the sheet package
// directly — the dependency only runs the other way.
//
// A nonexistent or empty cell must resolve to (0, nil). A text cell whose
// content parses entirely as a number resolves to that number; otherwise
// it resolves to (0, &Error{Kind: KindValue}). A formula cell resolves to
// its own computed value, propagating its Error if it has one.
type Referencer interface {
	Value(pos position.Position) (float64, *Error)
}

// Formula is a parsed, immutable formula expression.
type Formula struct {
	ast Expr
}

// Parse parses expr — the text following the leading '=' — into a Formula.
// It returns an error wrapping ErrParse on malformed input.
func Parse(expr string) (*Formula, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	ast, err := parse(tokens)
	if err != nil {
		return nil, err
	}
	return &Formula{ast: ast}, nil
}

// String reprints the formula canonically: whitespace-normalized, with
// redundant parentheses removed.
func (f *Formula) String() string {
	return sprint(f.ast)
}

// ReferencedCells returns the positions referenced by the formula, in
// first-appearance order, deduplicated.
func (f *Formula) ReferencedCells() []position.Position {
	return referencedCells(f.ast)
}

// Evaluate computes the formula's value against ref. It never returns a Go
// error: parse failures are caught at Parse time, and runtime failures
// are reported through the returned *Error.
func (f *Formula) Evaluate(ref Referencer) (float64, *Error) {
	return eval(f.ast, ref)
}
