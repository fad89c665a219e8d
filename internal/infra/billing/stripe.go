package billing

import (
	"context"
	"errors"
	"strings"

	domain "venue-marketplace/internal/domain/billing"
	"venue-marketplace/internal/infra"
	"venue-marketplace/internal/pkg/config"
	"venue-marketplace/internal/pkg/errs"
	"venue-marketplace/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
)

func NewStripeClient(cfg config.BillingConfig) (*stripe.Client, error) {
	key := strings.TrimSpace(cfg.SecretKey)
	if key == "" {
		return nil, errs.Wrap(errs.ErrBillingNotConfigured, "STRIPE_SECRET_KEY is empty")
	}
	return stripe.NewClient(key), nil
}

type StripeGateway struct {
	client *stripe.Client
}

func NewStripeGateway(client *stripe.Client) *StripeGateway {
	return &StripeGateway{client: client}
}

func (g *StripeGateway) CreateCoupon(ctx context.Context, c *domain.Coupon) (string, error) {
	coupon, err := g.client.V1Coupons.Create(ctx, couponParams(c))
	if err != nil {
		return "", classifyStripeErr("failed to create coupon "+c.Code().String(), err)
	}
	return coupon.ID, nil
}

func (g *StripeGateway) CreateProduct(ctx context.Context, p *domain.Plan) (string, error) {
	product, err := g.client.V1Products.Create(ctx, productParams(p))
	if err != nil {
		return "", classifyStripeErr("failed to create product "+p.ProductID(), err)
	}
	return product.ID, nil
}

// FindActivePrice only considers active prices; an archived price keeps its
// lookup key but must not be handed out again.
func (g *StripeGateway) FindActivePrice(ctx context.Context, lookupKey string) (*domain.Price, error) {
	params := &stripe.PriceListParams{
		Active:     stripe.Bool(true),
		LookupKeys: stripe.StringSlice([]string{lookupKey}),
	}
	for price, err := range g.client.V1Prices.List(ctx, params) {
		if err != nil {
			return nil, classifyStripeErr("failed to list prices for "+lookupKey, err)
		}
		return toDomainPrice(price), nil
	}
	return nil, nil
}

func (g *StripeGateway) CreatePrice(ctx context.Context, p *domain.Plan, productID string, transferLookupKey bool) (string, error) {
	price, err := g.client.V1Prices.Create(ctx, priceParams(p, productID, transferLookupKey))
	if err != nil {
		return "", classifyStripeErr("failed to create price "+p.LookupKey(), err)
	}
	return price.ID, nil
}

// toDomainPrice leaves the recurrence empty for one-time prices, so they never
// match a plan.
func toDomainPrice(price *stripe.Price) *domain.Price {
	out := &domain.Price{
		ID:              price.ID,
		UnitAmountCents: price.UnitAmount,
		Currency:        domain.Currency(strings.ToLower(string(price.Currency))),
	}
	if price.Recurring != nil {
		out.Interval = domain.Interval(price.Recurring.Interval)
		out.IntervalCount = price.Recurring.IntervalCount
	}
	return out
}

func couponParams(c *domain.Coupon) *stripe.CouponCreateParams {
	params := &stripe.CouponCreateParams{
		ID:         stripe.String(c.Code().String()),
		Name:       stripe.String(c.Name()),
		PercentOff: stripe.Float64(c.PercentOff()),
		Duration:   stripe.String(string(c.Duration())),
	}
	if m := c.DurationInMonths(); m != nil {
		params.DurationInMonths = stripe.Int64(*m)
	}
	return params
}

func productParams(p *domain.Plan) *stripe.ProductCreateParams {
	params := &stripe.ProductCreateParams{
		ID:   stripe.String(p.ProductID()),
		Name: stripe.String(p.Name()),
	}
	if p.Description() != "" {
		params.Description = stripe.String(p.Description())
	}
	return params
}

func priceParams(p *domain.Plan, productID string, transferLookupKey bool) *stripe.PriceCreateParams {
	params := &stripe.PriceCreateParams{
		Currency:   stripe.String(p.Currency().String()),
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(p.UnitAmountCents()),
		LookupKey:  stripe.String(p.LookupKey()),
		Nickname:   stripe.String(p.Name()),
		Recurring: &stripe.PriceCreateRecurringParams{
			Interval:      stripe.String(string(p.Interval())),
			IntervalCount: stripe.Int64(p.IntervalCount()),
		},
	}
	if transferLookupKey {
		params.TransferLookupKey = stripe.Bool(true)
	}
	return params
}

// classifyStripeErr marks "already exists" so callers can treat it as success.
// Everything else becomes a PROVIDER_FAILURE repository error.
func classifyStripeErr(msg string, err error) error {
	var se *stripe.Error
	if errors.As(err, &se) && se.Code == stripe.ErrorCodeResourceAlreadyExists {
		return errs.Mark(errs.Wrap(err, msg), commands.ErrProviderResourceExists)
	}
	return infra.WrapRepoErr(msg, err, infra.KindProviderFailure)
}
