package bootstrap

import (
	domain "venue-marketplace/internal/domain/billing"
	"venue-marketplace/internal/infra/billing"
	"venue-marketplace/internal/pkg/config"
	"venue-marketplace/internal/pkg/errs"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/fx"
)

var BillingModule = fx.Module("billing",
	fx.Provide(
		NewStripeClient,
		NewBillingCurrency,
	),
)

func NewStripeClient(cfg config.Config) (*stripe.Client, error) {
	return billing.NewStripeClient(cfg.Billing)
}

func NewBillingCurrency(cfg config.Config) (domain.Currency, error) {
	c, err := domain.NewCurrency(cfg.Billing.Currency)
	if err != nil {
		return "", errs.Wrapf(err, "BILLING_CURRENCY=%q", cfg.Billing.Currency)
	}
	return c, nil
}
