// Package cli is the operator command line: templates, share text, stats and
// reset against the configured snapshot backend.
package cli

import (
	"context"
	"io"

	"github.com/Skale-Club/xtimator/internal/app"
	"github.com/Skale-Club/xtimator/internal/config"
	"github.com/Skale-Club/xtimator/internal/infrastructure/logging"
	"github.com/Skale-Club/xtimator/internal/infrastructure/share"

	"github.com/spf13/cobra"
)

var backendFlag string

var rootCmd = &cobra.Command{
	Use:   "xtimator",
	Short: "Operator tools for the Xtimator estimate store",
	Long: `Inspect and maintain the Xtimator estimate store.

Commands run against the backend selected by STORAGE_BACKEND (or --backend)
and flush every change before exiting.`,
	SilenceUsage: true,
}

// openApp builds the application for a single command run. Copied text is
// written to out.
var openApp = func(ctx context.Context, out io.Writer) (*app.App, error) {
	cfg := config.Load()
	if backendFlag != "" {
		cfg.StorageBackend = backendFlag
	}
	return app.New(ctx, cfg,
		app.WithLogger(logging.Discard()),
		app.WithShare(share.Unavailable{}, share.NewWriterClipboard(out)),
	)
}

func Execute() error {
	return rootCmd.Execute()
}

func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := openApp(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(ctx); err == nil {
			err = cerr
		}
	}()
	return fn(ctx, a)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "snapshot backend (file, memory, sqlite, dynamodb, redis)")

	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
