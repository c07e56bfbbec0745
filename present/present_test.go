package present

import (
	"strings"
	"testing"

	"github.com/kalexmills/cellgraph/position"
	"github.com/kalexmills/cellgraph/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, s *sheet.Sheet, posStr, text string) {
	t.Helper()
	pos, err := position.Parse(posStr)
	require.NoError(t, err)
	require.NoError(t, s.SetCell(pos, text))
}

func TestWriteValuesRendersHeaderAndBorder(t *testing.T) {
	s := sheet.New()
	mustSet(t, s, "A1", "2")
	mustSet(t, s, "B1", "=A1+3")

	var buf strings.Builder
	require.NoError(t, WriteValues(&buf, s))

	out := buf.String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "5")
	assert.True(t, strings.Contains(out, "-"), "expected a boundary line")
}

func TestWriteTextsRendersFormulaSource(t *testing.T) {
	s := sheet.New()
	mustSet(t, s, "A1", "=1+1")

	var buf strings.Builder
	require.NoError(t, WriteTexts(&buf, s))
	assert.Contains(t, buf.String(), "=1+1")
}

func TestWriteTabularIsTabSeparated(t *testing.T) {
	s := sheet.New()
	mustSet(t, s, "A1", "1")
	mustSet(t, s, "B1", "2")

	var buf strings.Builder
	require.NoError(t, WriteTabular(&buf, s, true))
	assert.Contains(t, buf.String(), "1")
	assert.Contains(t, buf.String(), "2")
	assert.Contains(t, buf.String(), "\t")
}

func TestColumnLetters(t *testing.T) {
	assert.Equal(t, "A", columnLetters(0))
	assert.Equal(t, "Z", columnLetters(25))
	assert.Equal(t, "AA", columnLetters(26))
	assert.Equal(t, "AZ", columnLetters(51))
}

func TestFitTruncatesWithEllipsis(t *testing.T) {
	assert.Equal(t, "  hi", fit("hi", 4))
	assert.Equal(t, "he...", fit("hello world", 5))
}
