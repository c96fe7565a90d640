package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// list: print every record with its index, then the GPA footer.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show recorded grades and the current GPA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := appCtx.Ledger.Records()
			if len(records) == 0 {
				fmt.Println("no records")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tGRADE\tCREDITS\tNOTE")
			for i, r := range records {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", i, r.Grade, r.Credits, r.Note)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("\n%d credit-hours, GPA %s\n", records.TotalCredits(), appCtx.Ledger.FormatGPA())
			return nil
		},
	}
}
