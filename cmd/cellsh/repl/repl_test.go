package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, script string) (stdout, stderr string) {
	t.Helper()
	var out, errOut strings.Builder
	err := Run(strings.NewReader(script), &out, &errOut)
	require.NoError(t, err)
	return out.String(), errOut.String()
}

func TestReplSetAndPrintCell(t *testing.T) {
	out, errOut := runScript(t, "set A1 \"=5 + 10\"\nprint A1\nquite\n")
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Value: 15; Text: =5+10")
}

func TestReplClear(t *testing.T) {
	out, _ := runScript(t, "set A1 \"5\"\nclear A1\nprint A1\nquite\n")
	assert.Contains(t, out, "Value: ; Text: ")
}

func TestReplPrintWholeGridValues(t *testing.T) {
	out, _ := runScript(t, "set A1 \"1\"\nset B1 \"2\"\nprint -v\nquite\n")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
}

func TestReplUnknownCommand(t *testing.T) {
	_, errOut := runScript(t, "bogus A1\nquite\n")
	assert.Contains(t, errOut, "is not a spreadsheet command, see 'help'")
}

func TestReplMissingQuote(t *testing.T) {
	_, errOut := runScript(t, "set A1 \"unterminated\nquite\n")
	assert.Contains(t, errOut, "error, missing quote")
}

func TestReplInvalidPosition(t *testing.T) {
	_, errOut := runScript(t, "set ZZZZZ1 \"5\"\nquite\n")
	assert.Contains(t, errOut, "error: invalid position")
}

func TestReplCircularDependency(t *testing.T) {
	_, errOut := runScript(t, "set A1 \"=B1\"\nset B1 \"=A1\"\nquite\n")
	assert.Contains(t, errOut, "error: circular dependency")
}

func TestReplHelp(t *testing.T) {
	out, _ := runScript(t, "help\nquite\n")
	assert.Contains(t, out, "Common spreadsheet commands:")
}
