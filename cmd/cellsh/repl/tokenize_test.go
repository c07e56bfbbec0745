package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeSimpleCommand(t *testing.T) {
	args, err := tokenize("clear A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"clear", "A1"}, args)
}

func TestTokenizeQuotedText(t *testing.T) {
	args, err := tokenize(`set A1 "=5 + 10"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"set", "A1", "=5 + 10"}, args)
}

func TestTokenizeMissingQuote(t *testing.T) {
	_, err := tokenize(`set A1 "=5 + 10`)
	assert.ErrorIs(t, err, ErrMissingQuote)
}

func TestTokenizeEmptyLine(t *testing.T) {
	args, err := tokenize("   ")
	require.NoError(t, err)
	assert.Empty(t, args)
}
