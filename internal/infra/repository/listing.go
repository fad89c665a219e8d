package repository

import (
	"context"

	"venue-marketplace/internal/domain/listing"
	"venue-marketplace/internal/infra"
	"venue-marketplace/internal/infra/db"
	"venue-marketplace/internal/usecase/shared"
)

// The two statements are complements: category_id is NOT NULL and
// categories.name is NOT NULL, so every listing satisfies exactly one of
// "name = ANY($1)" and "NOT (name = ANY($1))".
const markServiceListingsSQL = `
UPDATE listings AS l
SET type = 'SERVICE',
    updated_at = now()
FROM categories AS c
WHERE l.category_id = c.id
  AND c.name = ANY($1::text[])
  AND l.type <> 'SERVICE'
`

const markSpaceListingsSQL = `
UPDATE listings AS l
SET type = 'SPACE',
    updated_at = now()
FROM categories AS c
WHERE l.category_id = c.id
  AND NOT (c.name = ANY($1::text[]))
  AND l.type <> 'SPACE'
`

const countListingsByTypeSQL = `
SELECT type, count(*)
FROM listings
GROUP BY type
`

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (r *ListingRepository) ApplyPartition(ctx context.Context, tx db.DBTX, serviceNames []string) (shared.PartitionCounts, error) {
	var counts shared.PartitionCounts

	tag, err := tx.Exec(ctx, markServiceListingsSQL, serviceNames)
	if err != nil {
		return counts, infra.WrapRepoErr("failed to mark service listings", err)
	}
	counts.MarkedService = tag.RowsAffected()

	tag, err = tx.Exec(ctx, markSpaceListingsSQL, serviceNames)
	if err != nil {
		return counts, infra.WrapRepoErr("failed to mark space listings", err)
	}
	counts.MarkedSpace = tag.RowsAffected()

	return counts, nil
}

func (r *ListingRepository) CountByType(ctx context.Context, tx db.DBTX) (map[listing.Type]int64, error) {
	rows, err := tx.Query(ctx, countListingsByTypeSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count listings", err)
	}
	defer rows.Close()

	out := map[listing.Type]int64{
		listing.TypeSpace:   0,
		listing.TypeService: 0,
	}
	for rows.Next() {
		var (
			typ   string
			count int64
		)
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing count", err)
		}
		t, err := listing.NewType(typ)
		if err != nil {
			return nil, infra.WrapRepoErr("unexpected listing type "+typ, err)
		}
		out[t] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate listing counts", err)
	}
	return out, nil
}
