package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// gpa: print the current average, rounded half-up to two decimals by default.
// --raw prints the unrounded value the display form is derived from.
func gpaCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "gpa",
		Short: "Print the current GPA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				fmt.Println(appCtx.Ledger.GPA())
				return nil
			}
			fmt.Println(appCtx.Ledger.FormatGPA())
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the unrounded value")
	return cmd
}
