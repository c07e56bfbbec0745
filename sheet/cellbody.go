package sheet

import (
	"strconv"
	"strings"

	"github.com/kalexmills/cellgraph/formula"
	"github.com/kalexmills/cellgraph/position"
)

// body is the capability set every cell content variant implements:
// {Value, Text, ReferencedCells}. A tagged variant with a shared interface,
// not a deep type hierarchy, matching the original impl_/EmptyImpl/
// TextImpl/FormulaImpl split in cell.h.
type body interface {
	// Value computes this body's value. ref resolves other cells' values
	// for a formula body; empty and text bodies ignore it.
	Value(ref formula.Referencer) Value
	// Text returns this body's wire-form text (uncached).
	Text() string
	// ReferencedCells returns the positions this body references.
	ReferencedCells() []position.Position
}

// emptyBody is the content of a cell that has never been set, or has been
// cleared.
type emptyBody struct{}

func (emptyBody) Value(formula.Referencer) Value       { return textValue("") }
func (emptyBody) Text() string                         { return "" }
func (emptyBody) ReferencedCells() []position.Position { return nil }

// textBody holds literal text: raw is the content, escaped records whether
// it was written with a leading apostrophe (re-emitted by Text).
type textBody struct {
	raw     string
	escaped bool
}

func (b textBody) Value(formula.Referencer) Value {
	// An apostrophe forces text interpretation even when the content looks
	// numeric (spec round-trip: escaped text's value is always the text
	// itself) — unescaped text still attempts a full numeric parse first.
	if !b.escaped {
		if n, err := strconv.ParseFloat(b.raw, 64); err == nil {
			return numberValue(n)
		}
	}
	return textValue(b.raw)
}

func (b textBody) Text() string {
	if b.escaped {
		return escapeSign + b.raw
	}
	return b.raw
}

func (b textBody) ReferencedCells() []position.Position { return nil }

// formulaBody holds a parsed formula expression.
type formulaBody struct {
	f *formula.Formula
}

func (b formulaBody) Value(ref formula.Referencer) Value {
	v, err := b.f.Evaluate(ref)
	if err != nil {
		return errorValue(err)
	}
	return numberValue(v)
}

func (b formulaBody) Text() string {
	return formulaSign + b.f.String()
}

func (b formulaBody) ReferencedCells() []position.Position {
	return b.f.ReferencedCells()
}

const (
	formulaSign = "="
	escapeSign  = "'"
)

// newBody interprets text according to the wire form from spec.md §6:
// empty -> caller no-ops before reaching here; leading '=' with length > 1
// -> formula; leading "'" -> escaped text; otherwise literal text.
func newBody(text string) (body, error) {
	switch {
	case strings.HasPrefix(text, formulaSign) && len(text) > 1:
		f, err := formula.Parse(text[1:])
		if err != nil {
			return nil, err
		}
		return formulaBody{f: f}, nil
	case strings.HasPrefix(text, escapeSign):
		return textBody{raw: text[1:], escaped: true}, nil
	default:
		return textBody{raw: text}, nil
	}
}
