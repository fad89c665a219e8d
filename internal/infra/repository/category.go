package repository

import (
	"context"

	"venue-marketplace/internal/domain/category"
	"venue-marketplace/internal/infra"
	"venue-marketplace/internal/infra/db"
	"venue-marketplace/internal/pkg/pgconv"
	"venue-marketplace/internal/usecase/shared"
)

// Returns no row when the stored type already matches, so an unchanged seed
// does not bump updated_at.
const upsertCategorySQL = `
INSERT INTO categories (id, name, type)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE
SET type = EXCLUDED.type,
    updated_at = now()
WHERE categories.type IS DISTINCT FROM EXCLUDED.type
RETURNING (xmax = 0) AS inserted
`

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Upsert(ctx context.Context, tx db.DBTX, c *category.Category) (shared.UpsertOutcome, error) {
	var inserted bool
	err := tx.QueryRow(ctx, upsertCategorySQL, c.ID(), c.Name(), c.Type().String()).Scan(&inserted)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return shared.UpsertUnchanged, nil
		}
		return "", infra.WrapRepoErr("failed to upsert category "+c.Name(), err)
	}
	if inserted {
		return shared.UpsertCreated, nil
	}
	return shared.UpsertUpdated, nil
}
