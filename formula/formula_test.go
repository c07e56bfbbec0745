package formula

import (
	"testing"

	"github.com/kalexmills/cellgraph/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Expr
		wantErr  bool
	}{
		{name: "basic formula", input: "1+1", expected: add(val(1), val(1))},
		{name: "ignore whitespace", input: "  12 + 14", expected: add(val(12), val(14))},
		{name: "cell ref formula", input: "A1*13", expected: mul(ref(0, 0), val(13))},
		{
			name:  "mul before add",
			input: "A1*B2+C3*D4",
			expected: add(
				mul(ref(0, 0), ref(1, 1)),
				mul(ref(2, 2), ref(3, 3)),
			),
		},
		{name: "unary expr", input: "-123", expected: val(-123)},
		{name: "multiply a negative", input: "-123*-456", expected: mul(val(-123), val(-456))},
		{name: "subtract from a negative", input: "-123-456", expected: sub(val(-123), val(456))},
		{
			name:     "division",
			input:    "A1/B2/C3/D4",
			expected: div(div(div(ref(0, 0), ref(1, 1)), ref(2, 2)), ref(3, 3)),
		},
		{name: "decimal literal", input: "1.5+2", expected: add(val(1.5), val(2))},
		{name: "parenthesized", input: "(A1+B1)*2", expected: mul(add(ref(0, 0), ref(0, 1)), val(2))},
		{name: "bad expr", input: "A1*", wantErr: true},
		{name: "unbalanced paren", input: "(A1+B1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tt.expected, f.ast)
		})
	}
}

func TestFormulaString(t *testing.T) {
	tests := []struct{ input, want string }{
		{"1+1", "1+1"},
		{"(1+1)", "1+1"},
		{"A1+B1*2", "A1+B1*2"},
		{"(A1+B1)*2", "(A1+B1)*2"},
		{"A1-(B1-C1)", "A1-(B1-C1)"},
		{"A1-B1-C1", "A1-B1-C1"},
		{"A1/(B1/C1)", "A1/(B1/C1)"},
		{"-A1", "-A1"},
		{"-(A1+B1)", "-(A1+B1)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.String())
		})
	}
}

type mapReferencer map[position.Position]float64

func (m mapReferencer) Value(pos position.Position) (float64, *Error) {
	if v, ok := m[pos]; ok {
		return v, nil
	}
	return 0, nil
}

func TestEvaluate(t *testing.T) {
	f, err := Parse("A1+3")
	require.NoError(t, err)
	val, ferr := f.Evaluate(mapReferencer{position.New(0, 0): 2})
	require.Nil(t, ferr)
	assert.Equal(t, 5.0, val)
}

func TestEvaluateDivByZero(t *testing.T) {
	f, err := Parse("1/0")
	require.NoError(t, err)
	_, ferr := f.Evaluate(mapReferencer{})
	require.NotNil(t, ferr)
	assert.Equal(t, KindArithm, ferr.Kind)
	assert.Equal(t, "#ARITHM!", ferr.String())
}

func TestReferencedCellsDeduped(t *testing.T) {
	f, err := Parse("A1+A1+B1")
	require.NoError(t, err)
	assert.Equal(t, []position.Position{position.New(0, 0), position.New(0, 1)}, f.ReferencedCells())
}

func add(x, y Expr) Expr { return BinaryExpr{X: x, Op: TokenAdd, Y: y} }
func sub(x, y Expr) Expr { return BinaryExpr{X: x, Op: TokenSub, Y: y} }
func mul(x, y Expr) Expr { return BinaryExpr{X: x, Op: TokenMul, Y: y} }
func div(x, y Expr) Expr { return BinaryExpr{X: x, Op: TokenDiv, Y: y} }
func val(v float64) Expr { return ConstExpr{Value: v} }
func ref(row, col int) Expr {
	return CellRefExpr{Ref: position.New(row, col)}
}
