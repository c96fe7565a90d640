package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// remove <index>: delete one record by its list position. An out-of-range
// index changes nothing.
func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the record at the given index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q is not an integer", args[0])
			}

			if err := appCtx.Ledger.Remove(index); err != nil {
				return err
			}
			fmt.Printf("GPA: %s\n", appCtx.Ledger.FormatGPA())
			return nil
		},
	}
}
