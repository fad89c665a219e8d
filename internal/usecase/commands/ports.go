package commands

import (
	"context"

	"venue-marketplace/internal/domain/billing"
	"venue-marketplace/internal/pkg/errs"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// ErrProviderResourceExists marks provider errors meaning "an object with this
// id already exists". Gateways must mark such errors with it.
var ErrProviderResourceExists = errs.New("provider resource already exists")

type BillingGateway interface {
	CreateCoupon(ctx context.Context, c *billing.Coupon) (string, error)
	// CreateProduct returns ErrProviderResourceExists when the plan's product id is taken.
	CreateProduct(ctx context.Context, p *billing.Plan) (string, error)
	// FindActivePrice looks a price up by lookup key; it returns nil when none exists.
	FindActivePrice(ctx context.Context, lookupKey string) (*billing.Price, error)
	// CreatePrice attaches the plan's lookup key to the new price. With
	// transferLookupKey the key moves off the price currently holding it.
	CreatePrice(ctx context.Context, p *billing.Plan, productID string, transferLookupKey bool) (string, error)
}

type CacheStore interface {
	ScanKeys(ctx context.Context, pattern string) ([]string, error)
	Delete(ctx context.Context, keys ...string) (int64, error)
}
