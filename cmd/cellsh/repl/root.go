// Package repl is the interactive command shell for the spreadsheet
// engine: one cobra.Command per verb, dispatched line-by-line over a read
// loop, mirroring the original source's ParseCommand/GetCommonCommand
// switch while gaining cobra's flag parsing for print -v/-t.
package repl

import (
	"errors"
	"io"

	"github.com/kalexmills/cellgraph/formula"
	"github.com/kalexmills/cellgraph/position"
	"github.com/kalexmills/cellgraph/sheet"
	"github.com/spf13/cobra"
)

// errQuit unwinds the REPL loop when the "quite" command runs.
var errQuit = errors.New("quite")

// newRootCommand builds a fresh command tree bound to s. A fresh tree is
// built per input line since cobra commands are not meant to be
// Execute()'d repeatedly with mutated flag state.
func newRootCommand(s *sheet.Sheet, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "cellsh",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.AddCommand(
		newSetCommand(s),
		newClearCommand(s),
		newPrintCommand(s),
		newQuiteCommand(),
	)
	return root
}

// describeError renders err the way the original main.cpp's catch chain
// does, one line, matching each of the four escaping error kinds plus the
// "missing quote" and "unknown command" cases.
func describeError(err error, command string) string {
	switch {
	case errors.Is(err, ErrMissingQuote):
		return "error, missing quote"
	case errors.Is(err, sheet.ErrInvalidPosition), errors.Is(err, position.ErrInvalid):
		return "error: invalid position"
	case errors.Is(err, formula.ErrParse):
		return "error: invalid formula"
	case errors.Is(err, sheet.ErrCircularDependency):
		return "error: circular dependency"
	default:
		return "'" + command + "' is not a spreadsheet command, see 'help'"
	}
}
