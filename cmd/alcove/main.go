package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/tmwhalen/alcove/internal/app"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "alcove",
		Short: "Terminal client for a personal library catalogue",
		Long: `Alcove is a terminal client for a personal library catalogue server.

Browse the catalogue, walk bookshelves, and manage books, categories and
series without leaving the terminal. Sign in once; the session is resumed
on the next start.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/alcove/config.toml)")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/alcove/prefs.toml)")
	cmd.Flags().StringVar(&opts.SessionPath, "session", "", "session file (default ~/.config/alcove/session.toml)")
	cmd.Flags().StringVar(&opts.ServerURL, "server", "", "backend URL (overrides config)")

	return cmd
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
