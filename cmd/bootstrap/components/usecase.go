package components

import (
	"venue-marketplace/internal/domain/category"
	"venue-marketplace/internal/domain/listing"
	"venue-marketplace/internal/infra/billing"
	"venue-marketplace/internal/infra/cache"
	"venue-marketplace/internal/pkg/config"
	"venue-marketplace/internal/pkg/errs"
	"venue-marketplace/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseGatewaysModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewServiceNameSet,
)

var usecaseGatewaysModule = fx.Module("usecase/gateways",
	fx.Provide(
		fx.Annotate(
			billing.NewStripeGateway,
			fx.As(new(commands.BillingGateway)),
		),
		fx.Annotate(
			cache.NewRedisStore,
			fx.As(new(commands.CacheStore)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogCommands,
		commands.NewBillingCommands,
		commands.NewCacheCommands,
	),
)

// NewServiceNameSet falls back to the SERVICE entries of the default seed list
// when CATALOG_SERVICE_NAMES is unset.
func NewServiceNameSet(cfg config.Config) (listing.ServiceNameSet, error) {
	names := cfg.Catalog.ServiceNames
	if len(names) == 0 {
		names = category.ServiceNames(category.DefaultSeeds)
	}
	set, err := listing.NewServiceNameSet(names)
	if err != nil {
		return listing.ServiceNameSet{}, errs.Wrap(err, "CATALOG_SERVICE_NAMES")
	}
	return set, nil
}
