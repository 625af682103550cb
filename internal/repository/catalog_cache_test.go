package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/domain"
)

type scriptedSource struct {
	problems []domain.Problem
	err      error
	calls    int
}

func (s *scriptedSource) FetchProblems(ctx context.Context, limit int) ([]domain.Problem, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.problems, nil
}

func sampleProblems() []domain.Problem {
	return []domain.Problem{
		{Title: "Two Sum", TitleSlug: "two-sum", Difficulty: domain.DifficultyEasy, AcRate: 50},
		{Title: "LRU Cache", TitleSlug: "lru-cache", Difficulty: domain.DifficultyMedium, AcRate: 43},
	}
}

func TestCatalogCacheFetchesOnceOnSuccess(t *testing.T) {
	source := &scriptedSource{problems: sampleProblems()}
	cache := NewCatalogCache(source, 2000, zap.NewNop())

	first := cache.GetAll(context.Background())
	second := cache.GetAll(context.Background())

	require.Len(t, first, 2)
	assert.Equal(t, 1, source.calls, "cache hit must not refetch")

	// Same backing sequence, not a re-read of the source
	require.Len(t, second, 2)
	assert.Same(t, &first[0], &second[0])
	assert.Equal(t, 2, cache.Size())
}

func TestCatalogCacheRetriesAfterFailure(t *testing.T) {
	source := &scriptedSource{err: errors.New("network down")}
	cache := NewCatalogCache(source, 2000, zap.NewNop())

	assert.Empty(t, cache.GetAll(context.Background()))
	assert.Equal(t, 0, cache.Size())

	// Source recovers; the next call must retry the fetch
	source.err = nil
	source.problems = sampleProblems()

	assert.Len(t, cache.GetAll(context.Background()), 2)
	assert.Equal(t, 2, source.calls)
}

func TestCatalogCacheTreatsEmptyFetchAsNotLoaded(t *testing.T) {
	source := &scriptedSource{problems: nil}
	cache := NewCatalogCache(source, 2000, zap.NewNop())

	assert.Empty(t, cache.GetAll(context.Background()))
	assert.Empty(t, cache.GetAll(context.Background()))
	assert.Equal(t, 2, source.calls, "an empty fetch must not be cached")
}
