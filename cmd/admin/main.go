package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"venue-marketplace/cmd/bootstrap"
	"venue-marketplace/internal/pkg/config"
	"venue-marketplace/internal/pkg/errs"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "admin",
	Short:         "One-shot maintenance tasks for the marketplace backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnvFile(envFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCategoriesCmd)
	rootCmd.AddCommand(reclassifyListingsCmd)
	rootCmd.AddCommand(provisionBillingCmd)
	rootCmd.AddCommand(flushCacheCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Debug("command failed", "stack", errs.ExtractStackLines(err, 20))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// startApp builds the dependency graph, fills targets and starts the
// lifecycle. The returned stop function must always be called; it releases
// every client the targets pulled in.
func startApp(ctx context.Context, targets ...any) (func(), error) {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(func(*slog.Logger) {}),
		fx.Populate(targets...),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		return nil, err
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return nil, err
	}

	return func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop application", "error", err.Error())
		}
	}, nil
}
