package repl

import (
	"github.com/kalexmills/cellgraph/position"
	"github.com/kalexmills/cellgraph/sheet"
	"github.com/spf13/cobra"
)

// newSetCommand builds the "set POS TEXT" verb: set A1 "=5 + 10".
func newSetCommand(s *sheet.Sheet) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Sets a value in a new or existing cell",
		Long: "Sets a value in a new or existing cell.\n" +
			"Input format: set 'cell position' \"cell contents\"\n" +
			"Example: set A1 \"=5 + 10\"",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := position.Parse(args[0])
			if err != nil {
				return err
			}
			return s.SetCell(pos, args[1])
		},
	}
}
