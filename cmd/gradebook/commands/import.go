package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gradebook/internal/domain"
	"gradebook/internal/store"
)

// import <file>: replace the credit list with a previously exported snapshot.
// The snapshot is validated before anything is replaced, so a malformed file
// leaves the current list intact.
func importCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the credit list from an exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if passphrase != "" {
				if raw, err = store.Open(passphrase, raw); err != nil {
					return err
				}
			}
			records, err := domain.DecodeRecords(raw)
			if err != nil {
				return err
			}
			if err := appCtx.Ledger.Replace(records); err != nil {
				return err
			}
			fmt.Printf("imported %d records. GPA: %s\n", len(records), appCtx.Ledger.FormatGPA())
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase the export was sealed with")
	return cmd
}
