package repository

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/domain"
)

// catalogCache implements domain.ProblemCatalog with a fill-on-first-use
// in-memory copy of the remote catalog. A fetch is all-or-nothing: any
// failure leaves the cache unloaded so the next call retries. Once
// loaded the catalog is never mutated or refreshed for the process
// lifetime.
type catalogCache struct {
	source domain.CatalogSource
	limit  int
	logger *zap.Logger

	mu       sync.Mutex
	problems []domain.Problem
	loaded   bool
}

// NewCatalogCache creates a new catalog cache backed by the given source
func NewCatalogCache(source domain.CatalogSource, limit int, logger *zap.Logger) domain.ProblemCatalog {
	return &catalogCache{
		source: source,
		limit:  limit,
		logger: logger,
	}
}

// GetAll returns the cached catalog, fetching it first if no successful
// fetch has happened yet. Returns an empty slice when the catalog is
// unavailable; the caller treats that as "try again", not as an error.
func (c *catalogCache) GetAll(ctx context.Context) []domain.Problem {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && len(c.problems) > 0 {
		return c.problems
	}

	problems, err := c.source.FetchProblems(ctx, c.limit)
	if err != nil {
		c.logger.Warn("Failed to fetch problem catalog", zap.Error(err))
		return nil
	}
	if len(problems) == 0 {
		c.logger.Warn("Catalog source returned no problems")
		return nil
	}

	c.problems = problems
	c.loaded = true
	c.logger.Info("Problem catalog cached", zap.Int("count", len(problems)))
	return c.problems
}

// Size returns the number of cached problems, zero before the first
// successful fetch
func (c *catalogCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.problems)
}
