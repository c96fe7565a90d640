package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// clear: drop every record and delete the storage slot.
func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Ledger.RemoveAll(); err != nil {
				return err
			}
			fmt.Println("cleared")
			return nil
		},
	}
}
