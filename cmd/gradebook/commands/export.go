package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gradebook/internal/domain"
	"gradebook/internal/store"
)

// export <file>: write a snapshot of the credit list. With -p the snapshot is
// sealed with a passphrase-derived key; otherwise it is plain JSON.
func exportCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the credit list to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := appCtx.Ledger.Records()
			if records == nil {
				records = domain.CreditList{}
			}
			raw, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return err
			}
			if passphrase != "" {
				if raw, err = store.Seal(passphrase, raw); err != nil {
					return err
				}
			}
			if err := os.WriteFile(args[0], raw, 0o600); err != nil {
				return err
			}
			fmt.Printf("exported %d records to %s\n", len(records), args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "seal the export with a passphrase")
	return cmd
}
