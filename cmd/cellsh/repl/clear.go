package repl

import (
	"github.com/kalexmills/cellgraph/position"
	"github.com/kalexmills/cellgraph/sheet"
	"github.com/spf13/cobra"
)

// newClearCommand builds the "clear POS" verb.
func newClearCommand(s *sheet.Sheet) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clears the cell value",
		Long: "Clears the cell value.\n" +
			"Input format: clear 'cell position'",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := position.Parse(args[0])
			if err != nil {
				return err
			}
			return s.ClearCell(pos)
		},
	}
}
