package main

import (
	"fmt"
	"io"
	"sort"

	"venue-marketplace/internal/domain/category"
	"venue-marketplace/internal/domain/listing"
	"venue-marketplace/internal/usecase/commands"

	"github.com/spf13/cobra"
)

var reclassifyAfterSeed bool

var seedCategoriesCmd = &cobra.Command{
	Use:   "seed-categories",
	Short: "Create or update the default categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			catalog commands.CatalogCommands
			set     listing.ServiceNameSet
		)
		stop, err := startApp(cmd.Context(), &catalog, &set)
		if err != nil {
			return err
		}
		defer stop()

		result, err := catalog.SeedCategories(cmd.Context(), category.DefaultSeeds)
		if err != nil {
			return err
		}
		printSeedResult(cmd.OutOrStdout(), result)

		if !reclassifyAfterSeed {
			return nil
		}
		res, err := catalog.ReclassifyListings(cmd.Context(), set)
		if err != nil {
			return err
		}
		printReclassifyResult(cmd.OutOrStdout(), res)
		return nil
	},
}

var reclassifyListingsCmd = &cobra.Command{
	Use:   "reclassify-listings",
	Short: "Set every listing's type from its category name",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			catalog commands.CatalogCommands
			set     listing.ServiceNameSet
		)
		stop, err := startApp(cmd.Context(), &catalog, &set)
		if err != nil {
			return err
		}
		defer stop()

		res, err := catalog.ReclassifyListings(cmd.Context(), set)
		if err != nil {
			return err
		}
		printReclassifyResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	seedCategoriesCmd.Flags().BoolVar(&reclassifyAfterSeed, "reclassify", false, "reclassify listings after seeding")
}

func printSeedResult(w io.Writer, r *commands.SeedResult) {
	fmt.Fprintf(w, "categories: %d created, %d updated, %d unchanged (%d total)\n",
		r.Created, r.Updated, r.Unchanged, r.Total())
}

func printReclassifyResult(w io.Writer, r *commands.ReclassifyResult) {
	fmt.Fprintf(w, "service categories: %v\n", r.ServiceNames)
	fmt.Fprintf(w, "listings marked SERVICE: %d\n", r.MarkedService)
	fmt.Fprintf(w, "listings marked SPACE: %d\n", r.MarkedSpace)

	types := make([]string, 0, len(r.Totals))
	for t := range r.Totals {
		types = append(types, t.String())
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(w, "total %s: %d\n", t, r.Totals[listing.Type(t)])
	}
}
