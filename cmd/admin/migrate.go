package main

import (
	"fmt"

	"venue-marketplace/internal/infra/migrate"
	"venue-marketplace/internal/pkg/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg config.Config
		stop, err := startApp(cmd.Context(), &cfg)
		if err != nil {
			return err
		}
		defer stop()

		dsn := cfg.DB.BuildDSN()
		if err := migrate.Apply(cmd.Context(), dsn); err != nil {
			return err
		}
		version, dirty, err := migrate.Version(cmd.Context(), dsn)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d (dirty=%t)\n", version, dirty)
		return nil
	},
}
