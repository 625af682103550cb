package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/domain"
)

type stubCatalog struct {
	problems []domain.Problem
}

func (c *stubCatalog) GetAll(ctx context.Context) []domain.Problem { return c.problems }
func (c *stubCatalog) Size() int                                   { return len(c.problems) }

type stubChallenges struct {
	challenge *domain.DailyChallenge
	err       error
}

func (c *stubChallenges) FetchDailyChallenge(ctx context.Context) (*domain.DailyChallenge, error) {
	return c.challenge, c.err
}

func newTestProblemService(problems []domain.Problem, challenges domain.ChallengeSource) *ProblemService {
	if challenges == nil {
		challenges = &stubChallenges{}
	}
	svc := NewProblemService(&stubCatalog{problems: problems}, challenges, otel.Tracer("test"), zap.NewNop())
	svc.SeedRandom(rand.New(rand.NewSource(1)))
	return svc
}

func problem(slug string, difficulty domain.Difficulty, acRate float64, paid bool) domain.Problem {
	return domain.Problem{
		Title:      slug,
		TitleSlug:  slug,
		Difficulty: difficulty,
		AcRate:     acRate,
		PaidOnly:   paid,
	}
}

func mixedCatalog() []domain.Problem {
	return []domain.Problem{
		problem("easy-high", domain.DifficultyEasy, 65, false),
		problem("easy-low", domain.DifficultyEasy, 35, false),
		problem("medium-high", domain.DifficultyMedium, 55, false),
		problem("medium-low", domain.DifficultyMedium, 30, false),
		problem("hard-high", domain.DifficultyHard, 48, false),
		problem("hard-low", domain.DifficultyHard, 12, false),
		problem("paid-easy", domain.DifficultyEasy, 80, true),
	}
}

func TestSelectPairBeginnerSpeedIsAlwaysEasy(t *testing.T) {
	svc := newTestProblemService(mixedCatalog(), nil)
	stats := domain.UserStats{TotalSolved: 10}

	for i := 0; i < 100; i++ {
		pair := svc.SelectPair(context.Background(), stats)
		require.NotNil(t, pair)
		assert.Equal(t, domain.DifficultyEasy, pair.Speed.Difficulty)
		assert.NotEqual(t, domain.DifficultyHard, pair.Knowledge.Difficulty)
	}
}

func TestSelectPairExpertKnowledgeIsNeverEasy(t *testing.T) {
	svc := newTestProblemService(mixedCatalog(), nil)
	stats := domain.UserStats{TotalSolved: 450}

	for i := 0; i < 100; i++ {
		pair := svc.SelectPair(context.Background(), stats)
		require.NotNil(t, pair)
		assert.NotEqual(t, domain.DifficultyEasy, pair.Knowledge.Difficulty)
	}
}

func TestSelectPairAcceptanceRateFilters(t *testing.T) {
	svc := newTestProblemService(mixedCatalog(), nil)
	stats := domain.UserStats{TotalSolved: 200} // speed {Medium}, knowledge {Medium, Hard}

	for i := 0; i < 100; i++ {
		pair := svc.SelectPair(context.Background(), stats)
		require.NotNil(t, pair)
		assert.Equal(t, "medium-high", pair.Speed.TitleSlug, "only medium with acRate > 40")
		assert.Greater(t, knowledgeMaxAcRate, pair.Knowledge.AcRate)
	}
}

func TestSelectPairFallsBackToFullPool(t *testing.T) {
	// The only free problem is Easy with a 70% acceptance rate: a valid
	// speed candidate but no knowledge candidate (70 >= 60), so the
	// knowledge pick must fall back to the full free pool.
	catalog := []domain.Problem{
		problem("lone-easy", domain.DifficultyEasy, 70, false),
	}
	svc := newTestProblemService(catalog, nil)

	pair := svc.SelectPair(context.Background(), domain.UserStats{TotalSolved: 5})
	require.NotNil(t, pair)
	assert.Equal(t, "lone-easy", pair.Speed.TitleSlug)
	assert.Equal(t, "lone-easy", pair.Knowledge.TitleSlug)
}

func TestSelectPairForcedScenario(t *testing.T) {
	catalog := []domain.Problem{
		problem("two-sum", domain.DifficultyEasy, 50, false),
		problem("hard-x", domain.DifficultyHard, 10, false),
	}
	svc := newTestProblemService(catalog, nil)

	pair := svc.SelectPair(context.Background(), domain.UserStats{TotalSolved: 10})
	require.NotNil(t, pair)
	assert.Equal(t, "two-sum", pair.Speed.TitleSlug, "only Easy problem above 40% acceptance")
	assert.Equal(t, "two-sum", pair.Knowledge.TitleSlug, "only Easy/Medium problem below 60% acceptance")
}

func TestSelectPairEmptyCatalog(t *testing.T) {
	svc := newTestProblemService(nil, nil)
	assert.Nil(t, svc.SelectPair(context.Background(), domain.UserStats{TotalSolved: 10}))
}

func TestSelectPairAllPaid(t *testing.T) {
	catalog := []domain.Problem{
		problem("paid-1", domain.DifficultyEasy, 50, true),
		problem("paid-2", domain.DifficultyHard, 30, true),
	}
	svc := newTestProblemService(catalog, nil)
	assert.Nil(t, svc.SelectPair(context.Background(), domain.UserStats{TotalSolved: 10}))
}

func TestRandomProblemSingleCandidateIsDeterministic(t *testing.T) {
	catalog := []domain.Problem{
		problem("easy-a", domain.DifficultyEasy, 55, false),
		problem("only-hard", domain.DifficultyHard, 20, false),
		problem("paid-hard", domain.DifficultyHard, 25, true),
	}
	svc := newTestProblemService(catalog, nil)

	first := svc.RandomProblem(context.Background(), "Hard")
	second := svc.RandomProblem(context.Background(), "hard")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, "only-hard", first.TitleSlug)
	assert.Equal(t, "only-hard", second.TitleSlug)
}

func TestRandomProblemIgnoresFilterThatEmptiesTheSet(t *testing.T) {
	catalog := []domain.Problem{
		problem("easy-a", domain.DifficultyEasy, 55, false),
	}
	svc := newTestProblemService(catalog, nil)

	got := svc.RandomProblem(context.Background(), "Hard")
	require.NotNil(t, got)
	assert.Equal(t, "easy-a", got.TitleSlug)
}

func TestRandomProblemEmptyCatalog(t *testing.T) {
	svc := newTestProblemService(nil, nil)
	assert.Nil(t, svc.RandomProblem(context.Background(), ""))
}

func TestDailyChallengeAbsorbsUpstreamFailure(t *testing.T) {
	svc := newTestProblemService(nil, &stubChallenges{err: domain.ErrUpstreamUnavailable})
	assert.Nil(t, svc.DailyChallenge(context.Background()))
}

func TestDailyChallengePassesThrough(t *testing.T) {
	challenge := &domain.DailyChallenge{
		Date:     "2026-08-31",
		Question: problem("question-of-today", domain.DifficultyMedium, 44, false),
	}
	svc := newTestProblemService(nil, &stubChallenges{challenge: challenge})

	got := svc.DailyChallenge(context.Background())
	require.NotNil(t, got)
	assert.Equal(t, "question-of-today", got.Question.TitleSlug)
}

func TestCatalogStats(t *testing.T) {
	svc := newTestProblemService(mixedCatalog(), nil)

	stats := svc.CatalogStats(context.Background())
	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 3, stats.ByDifficulty[domain.DifficultyEasy])
	assert.Equal(t, 2, stats.ByDifficulty[domain.DifficultyMedium])
	assert.Equal(t, 2, stats.ByDifficulty[domain.DifficultyHard])
}
