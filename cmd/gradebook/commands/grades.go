package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gradebook/internal/domain"
)

// grades: print the fixed grade table.
func gradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Show the grade scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			for _, g := range domain.Grades() {
				q, _ := domain.Quality(g)
				fmt.Fprintf(w, "%s\t%.1f\n", g, q)
			}
			return w.Flush()
		},
	}
}
