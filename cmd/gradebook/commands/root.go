package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gradebook/internal/app"
)

var (
	home    string
	backend string
	verbose bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "gradebook",
		Short: "Record grades and compute a weighted GPA",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if cmd.Flags().Changed("backend") {
				cfg.Backend = backend
			}
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".gradebook")
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			appCtx, err = app.NewWire(cfg, log)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.gradebook)")
	root.PersistentFlags().StringVar(&backend, "backend", app.BackendFile, "storage backend: file or bolt")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		addCmd(), removeCmd(), clearCmd(),
		listCmd(), gpaCmd(), gradesCmd(),
		exportCmd(), importCmd(),
	)
	return root.Execute()
}
