package main

import (
	"fmt"

	"venue-marketplace/internal/usecase/commands"

	"github.com/spf13/cobra"
)

var flushCacheCmd = &cobra.Command{
	Use:   "flush-cache",
	Short: "Delete cached listing search results and listing details",
	RunE: func(cmd *cobra.Command, args []string) error {
		var cc commands.CacheCommands
		stop, err := startApp(cmd.Context(), &cc)
		if err != nil {
			return err
		}
		defer stop()

		n, err := cc.FlushListingCache(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d cache keys\n", n)
		return nil
	},
}
