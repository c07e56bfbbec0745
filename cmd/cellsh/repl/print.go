package repl

import (
	"fmt"

	"github.com/kalexmills/cellgraph/position"
	"github.com/kalexmills/cellgraph/present"
	"github.com/kalexmills/cellgraph/sheet"
	"github.com/spf13/cobra"
)

// newPrintCommand builds the "print" verb: "print POS" shows one cell's
// value and text; "print -v"/"print -t" renders the whole grid.
func newPrintCommand(s *sheet.Sheet) *cobra.Command {
	var values, texts bool
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Prints the contents of the specified cell or the entire table",
		Long: "Prints the contents of the specified cell or the entire table.\n" +
			"Input format for print specified cell: print 'cell position'\n" +
			"Additional commands:\n" +
			"  -v  Prints a table showing the values in the cells\n" +
			"  -t  Prints a table with text in the cells",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case values:
				return present.WriteValues(cmd.OutOrStdout(), s)
			case texts:
				return present.WriteTexts(cmd.OutOrStdout(), s)
			case len(args) == 1:
				pos, err := position.Parse(args[0])
				if err != nil {
					return err
				}
				cell, err := s.GetCell(pos)
				if err != nil {
					return err
				}
				if cell == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Value: ; Text: \n")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Value: %s; Text: %s\n", cell.GetValue().String(), cell.GetText())
				return nil
			default:
				return cmd.Help()
			}
		},
	}
	cmd.Flags().BoolVarP(&values, "values", "v", false, "print the whole grid's values")
	cmd.Flags().BoolVarP(&texts, "texts", "t", false, "print the whole grid's cell text")
	return cmd
}
