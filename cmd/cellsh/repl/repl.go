package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/kalexmills/cellgraph/sheet"
)

// instructionsText is printed by "help", matching the original source's
// PrintInstructions output.
const instructionsText = `Common spreadsheet commands:
--------------------------------------------------------------------------
  set       Sets a value in a new or existing cell.
            Input format: set 'cell position' "cell contents"
            Example: set A1 "=5 + 10"
--------------------------------------------------------------------------
  print     Prints the contents of the specified cell or the entire table.
            Input format for print specified cell: print 'cell position'
            Additional commands:
        -v  Prints a table showing the values in the cells
        -t  Prints a table with text in the cells
--------------------------------------------------------------------------
  clear     Clears the cell value.
            Input format : clear 'cell position'
--------------------------------------------------------------------------
  quite     Exit the program.
--------------------------------------------------------------------------
`

// Run executes the read-eval-print loop, reading one line per iteration
// from in, writing normal output to out and errors to errOut. It returns
// nil when the "quite" command is issued or the input is exhausted.
func Run(in io.Reader, out, errOut io.Writer) error {
	s := sheet.New()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		args, err := tokenize(line)
		if err != nil {
			fmt.Fprintln(errOut, describeError(err, line))
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "help" {
			fmt.Fprint(out, instructionsText)
			continue
		}

		root := newRootCommand(s, out, errOut)
		root.SetArgs(args)
		if err := root.Execute(); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(errOut, describeError(err, args[0]))
		}
	}
	return scanner.Err()
}
