package shared

import (
	"context"

	"venue-marketplace/internal/domain/category"
	"venue-marketplace/internal/domain/listing"
	"venue-marketplace/internal/infra/db"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: statements run on the pool, each in its own implicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Categories() CategoryRepository
	Listings() ListingRepository
	DB() db.DBTX
}

// UpsertOutcome tells what a category upsert did to the stored row.
type UpsertOutcome string

const (
	UpsertCreated   UpsertOutcome = "created"
	UpsertUpdated   UpsertOutcome = "updated"
	UpsertUnchanged UpsertOutcome = "unchanged"
)

type CategoryRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, c *category.Category) (UpsertOutcome, error)
}

// PartitionCounts holds rows changed by each half of a reclassification.
type PartitionCounts struct {
	MarkedService int64
	MarkedSpace   int64
}

type ListingRepository interface {
	// ApplyPartition sets SERVICE on listings whose category name is in
	// serviceNames and SPACE on every other listing.
	ApplyPartition(ctx context.Context, tx db.DBTX, serviceNames []string) (PartitionCounts, error)
	CountByType(ctx context.Context, tx db.DBTX) (map[listing.Type]int64, error)
}
