package main

import (
	"fmt"
	"io"

	"venue-marketplace/internal/domain/billing"
	"venue-marketplace/internal/usecase/commands"

	"github.com/spf13/cobra"
)

var provisionBillingCmd = &cobra.Command{
	Use:   "provision-billing",
	Short: "Create the launch coupon and the subscription plans on Stripe",
	RunE: func(cmd *cobra.Command, args []string) error {
		var bc commands.BillingCommands
		stop, err := startApp(cmd.Context(), &bc)
		if err != nil {
			return err
		}
		defer stop()

		report, err := bc.ProvisionAll(cmd.Context(), billing.DefaultCoupons, billing.DefaultPlans)
		if err != nil {
			return err
		}
		printProvisionReport(cmd.OutOrStdout(), report)
		if report.HasFailures() {
			return fmt.Errorf("provisioning incomplete: coupons %v, plans %v failed", report.FailedCoupons, report.FailedPlans)
		}
		return nil
	},
}

func printProvisionReport(w io.Writer, r *commands.ProvisionReport) {
	for _, c := range r.Coupons {
		if c.AlreadyExisted {
			fmt.Fprintf(w, "coupon %s already exists\n", c.Code)
			continue
		}
		fmt.Fprintf(w, "coupon %s created\n", c.Code)
	}
	for _, p := range r.Plans {
		state := "created"
		switch {
		case p.PriceReused:
			state = "reused"
		case p.ReplacedPriceID != "":
			state = "replaces " + p.ReplacedPriceID
		}
		fmt.Fprintf(w, "plan %s: product %s, price %s (%s, %d %s every %d %s)\n",
			p.LookupKey, p.ProductID, p.PriceID, state, p.UnitAmount, p.Currency, p.IntervalCount, p.Interval)
	}

	if len(r.Plans) == 0 {
		return
	}
	fmt.Fprintln(w, "\n# add to the deployment environment")
	for _, p := range r.Plans {
		if p.EnvName == "" {
			continue
		}
		fmt.Fprintf(w, "%s=%s\n", p.EnvName, p.PriceID)
	}
}
