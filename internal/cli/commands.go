package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/Skale-Club/xtimator/internal/app"
	"github.com/Skale-Club/xtimator/internal/domain/pricing"
	"github.com/Skale-Club/xtimator/internal/usecase"

	"github.com/spf13/cobra"
)

// Version information, set at build time using ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var errResetNotConfirmed = errors.New("reset erases every category, service, customer and estimate; pass --yes to confirm")

var confirmReset bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the business templates available during onboarding",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			list, err := a.Onboarding.ListTemplates(ctx)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOME\tCATEGORIAS\tSERVIÇOS")
			for _, t := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", t.ID, t.Name, len(t.Categories), len(t.Services))
			}
			return w.Flush()
		})
	},
}

var shareCmd = &cobra.Command{
	Use:   "share <estimate-id>",
	Short: "Print the share text of an estimate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			res, err := a.Estimates.Share(ctx, args[0])
			if err != nil {
				return err
			}
			if res.Channel == usecase.ShareChannelShare {
				fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			}
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dashboard totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			stats, err := a.Estimates.Dashboard(ctx)
			if err != nil {
				return err
			}
			settings, err := a.Settings.Get(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Orçamentos\t%d\n", stats.TotalEstimates)
			fmt.Fprintf(w, "Pendentes\t%d\n", stats.PendingEstimates)
			fmt.Fprintf(w, "Aceitos\t%d\n", stats.AcceptedEstimates)
			fmt.Fprintf(w, "Clientes\t%d\n", stats.TotalCustomers)
			fmt.Fprintf(w, "Valor total\t%s\n", pricing.FormatCurrency(stats.TotalValue, settings.CurrencySymbol))
			fmt.Fprintf(w, "Valor aceito\t%s\n", pricing.FormatCurrency(stats.AcceptedValue, settings.CurrencySymbol))
			return w.Flush()
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all data, including the persisted record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmReset {
			return errResetNotConfirmed
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if err := a.Settings.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Dados apagados.")
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "xtimator version %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  Git commit: %s\n", GitCommit)
		fmt.Fprintf(cmd.OutOrStdout(), "  Go version: %s\n", runtime.Version())
	},
}

func init() {
	resetCmd.Flags().BoolVar(&confirmReset, "yes", false, "confirm the reset")
}
