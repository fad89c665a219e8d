package commands

import (
	"context"
	"log/slog"

	"venue-marketplace/internal/pkg/errs"
)

// Key namespaces written by the listing search and detail endpoints.
var ListingCachePatterns = []string{
	"spaces:search*",
	"space:*",
}

type CacheCommands interface {
	// FlushListingCache deletes every key under the listing namespaces and
	// returns how many were removed. No matching key is a no-op.
	FlushListingCache(ctx context.Context) (int64, error)
}

type cacheUseCaseImpl struct {
	store    CacheStore
	patterns []string
	logger   *slog.Logger
}

func NewCacheCommands(store CacheStore, logger *slog.Logger) CacheCommands {
	return &cacheUseCaseImpl{store: store, patterns: ListingCachePatterns, logger: logger}
}

func (uc *cacheUseCaseImpl) FlushListingCache(ctx context.Context) (int64, error) {
	seen := make(map[string]struct{})
	var keys []string
	for _, pattern := range uc.patterns {
		matched, err := uc.store.ScanKeys(ctx, pattern)
		if err != nil {
			return 0, errs.Mark(errs.Wrapf(err, "scan %q", pattern), errs.ErrCacheUnavailable)
		}
		uc.logger.Debug("cache keys matched", "pattern", pattern, "count", len(matched))
		for _, k := range matched {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}

	if len(keys) == 0 {
		uc.logger.Info("no cached listing entries to delete")
		return 0, nil
	}

	deleted, err := uc.store.Delete(ctx, keys...)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "delete cached listing entries"), errs.ErrCacheUnavailable)
	}

	uc.logger.Info("cached listing entries deleted", "matched", len(keys), "deleted", deleted)
	return deleted, nil
}
