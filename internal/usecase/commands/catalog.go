package commands

import (
	"context"
	"log/slog"

	"venue-marketplace/internal/domain/category"
	"venue-marketplace/internal/domain/listing"
	"venue-marketplace/internal/pkg/errs"
	"venue-marketplace/internal/usecase/shared"
)

type SeedResult struct {
	Created   int
	Updated   int
	Unchanged int
}

func (r SeedResult) Total() int {
	return r.Created + r.Updated + r.Unchanged
}

type ReclassifyResult struct {
	ServiceNames  []string
	MarkedService int64
	MarkedSpace   int64
	// Totals after the run, keyed by listing type.
	Totals map[listing.Type]int64
}

type CatalogCommands interface {
	SeedCategories(ctx context.Context, seeds []category.Seed) (*SeedResult, error)
	ReclassifyListings(ctx context.Context, set listing.ServiceNameSet) (*ReclassifyResult, error)
}

type catalogUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewCatalogCommands(uow shared.UnitOfWork, logger *slog.Logger) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, logger: logger}
}

// SeedCategories converges the store towards seeds: missing categories are
// created, existing ones get their type overwritten. Each upsert is its own
// statement; a failure stops the run and the seeds already applied stay.
func (uc *catalogUseCaseImpl) SeedCategories(ctx context.Context, seeds []category.Seed) (*SeedResult, error) {
	if len(seeds) == 0 {
		return nil, errs.ErrEmptySeedList
	}
	normalized, err := category.ValidateSeeds(seeds)
	if err != nil {
		if errs.Is(err, category.ErrDuplicateSeedName) {
			return nil, errs.Mark(err, errs.ErrDuplicateSeed)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	result := &SeedResult{}
	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, s := range normalized {
			c, derr := category.NewCategory(s.Name, s.Type)
			if derr != nil {
				return derr
			}

			outcome, derr := tx.Categories().Upsert(ctx, tx.DB(), c)
			if derr != nil {
				return errs.Wrapf(derr, "seed category %q", s.Name)
			}

			switch outcome {
			case shared.UpsertCreated:
				result.Created++
			case shared.UpsertUpdated:
				result.Updated++
			default:
				result.Unchanged++
			}
			uc.logger.Debug("category seeded", "name", s.Name, "type", s.Type.String(), "outcome", string(outcome))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("categories seeded",
		"created", result.Created,
		"updated", result.Updated,
		"unchanged", result.Unchanged)
	return result, nil
}

// ReclassifyListings applies both halves of the partition in one transaction.
func (uc *catalogUseCaseImpl) ReclassifyListings(ctx context.Context, set listing.ServiceNameSet) (*ReclassifyResult, error) {
	if set.Len() == 0 {
		return nil, errs.Mark(listing.ErrEmptyServiceNames, errs.ErrDomainValidation)
	}

	result := &ReclassifyResult{ServiceNames: set.Names()}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		counts, derr := tx.Listings().ApplyPartition(ctx, tx.DB(), result.ServiceNames)
		if derr != nil {
			return derr
		}
		result.MarkedService = counts.MarkedService
		result.MarkedSpace = counts.MarkedSpace

		totals, derr := tx.Listings().CountByType(ctx, tx.DB())
		if derr != nil {
			return derr
		}
		result.Totals = totals
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("listings reclassified",
		"service_names", len(result.ServiceNames),
		"marked_service", result.MarkedService,
		"marked_space", result.MarkedSpace)
	return result, nil
}
