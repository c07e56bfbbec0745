package repl

import "github.com/spf13/cobra"

// newQuiteCommand builds the "quite" verb (kept exactly as misspelled in
// the original source) that ends the read-eval-print loop.
func newQuiteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quite",
		Short: "Exit the program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errQuit
		},
	}
}
