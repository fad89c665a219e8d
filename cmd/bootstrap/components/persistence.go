package components

import (
	"venue-marketplace/internal/handler/api"
	"venue-marketplace/internal/infra/repository"
	"venue-marketplace/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewTxBeginner,
	NewPinger,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		repository.NewCategoryRepository,
		repository.NewListingRepository,
		uow.NewPostgresUoW,
	),
)

func NewTxBeginner(pool *pgxpool.Pool) uow.TxBeginner {
	return pool
}

func NewPinger(pool *pgxpool.Pool) api.Pinger {
	return pool
}
