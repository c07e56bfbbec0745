package sheet

import (
	"strconv"

	"github.com/kalexmills/cellgraph/formula"
)

// Value is the tagged union a cell's GetValue can produce: a number, text,
// or a formula error. The zero Value is empty text, matching an Empty
// cell's GetValue.
type Value struct {
	kind valueKind
	num  float64
	text string
	ferr *formula.Error
}

type valueKind int

const (
	valueText valueKind = iota
	valueNumber
	valueError
)

func numberValue(v float64) Value { return Value{kind: valueNumber, num: v} }
func textValue(s string) Value    { return Value{kind: valueText, text: s} }
func errorValue(e *formula.Error) Value {
	return Value{kind: valueError, ferr: e}
}

// IsNumber reports whether v holds a numeric result.
func (v Value) IsNumber() bool { return v.kind == valueNumber }

// IsText reports whether v holds a text result (including the empty
// string produced by an empty cell).
func (v Value) IsText() bool { return v.kind == valueText }

// IsError reports whether v holds a formula error.
func (v Value) IsError() bool { return v.kind == valueError }

// Number returns the numeric result and true, or (0, false) if v is not a
// number.
func (v Value) Number() (float64, bool) {
	if v.kind != valueNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the text result, or "" if v is not text.
func (v Value) Text() string {
	if v.kind != valueText {
		return ""
	}
	return v.text
}

// Error returns the formula error, or nil if v is not an error.
func (v Value) Error() *formula.Error {
	if v.kind != valueError {
		return nil
	}
	return v.ferr
}

// String renders v the way the presentation layer would: the number in its
// shortest round-trip form, the text as-is, or the literal #ARITHM! token.
func (v Value) String() string {
	switch v.kind {
	case valueNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case valueError:
		return v.ferr.String()
	default:
		return v.text
	}
}
