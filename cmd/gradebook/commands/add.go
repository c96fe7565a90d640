package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gradebook/internal/domain"
)

// add <grade> <credits>: append a record and print the updated GPA. An
// unknown grade or out-of-range credits leave the list untouched; the GPA
// line still prints so the outcome is visible either way.
func addCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "add <grade> <credits>",
		Short: "Record a grade with its credit-hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			credits, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("credits %q is not an integer", args[1])
			}

			if err := appCtx.Ledger.Add(domain.Grade(args[0]), credits, note); err != nil {
				return err
			}
			fmt.Printf("GPA: %s\n", appCtx.Ledger.FormatGPA())
			return nil
		},
	}
	cmd.Flags().StringVarP(&note, "note", "n", "", "optional label, e.g. the course name")
	return cmd
}
