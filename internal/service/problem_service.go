package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/domain"
)

// Acceptance-rate cutoffs for the two recommendation slots. Speed picks
// are quick, high-success drills; knowledge picks are harder-to-pass,
// skill-building challenges. The filters are intentionally asymmetric
// and may overlap.
const (
	speedMinAcRate     = 40.0
	knowledgeMaxAcRate = 60.0
)

// ProblemService handles problem selection business logic
type ProblemService struct {
	catalog    domain.ProblemCatalog
	challenges domain.ChallengeSource
	tracer     trace.Tracer
	logger     *zap.Logger
	rng        *rand.Rand
	rngMu      sync.Mutex // Protects rng for concurrent access
}

// NewProblemService creates a new problem service
func NewProblemService(
	catalog domain.ProblemCatalog,
	challenges domain.ChallengeSource,
	tracer trace.Tracer,
	logger *zap.Logger,
) *ProblemService {
	return &ProblemService{
		catalog:    catalog,
		challenges: challenges,
		tracer:     tracer,
		logger:     logger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SeedRandom replaces the random source. Intended for deterministic tests.
func (s *ProblemService) SeedRandom(rng *rand.Rand) {
	s.rngMu.Lock()
	s.rng = rng
	s.rngMu.Unlock()
}

// difficultySets returns the speed and knowledge difficulty filters for
// a user's tier, bracketed by total solved count
func difficultySets(totalSolved int) (speed, knowledge []domain.Difficulty) {
	switch {
	case totalSolved < 50:
		return []domain.Difficulty{domain.DifficultyEasy},
			[]domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium}
	case totalSolved < 150:
		return []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium},
			[]domain.Difficulty{domain.DifficultyMedium}
	case totalSolved < 300:
		return []domain.Difficulty{domain.DifficultyMedium},
			[]domain.Difficulty{domain.DifficultyMedium, domain.DifficultyHard}
	default:
		return []domain.Difficulty{domain.DifficultyMedium, domain.DifficultyHard},
			[]domain.Difficulty{domain.DifficultyHard}
	}
}

// SelectPair picks one speed and one knowledge problem for the user's
// tier. Returns nil when the catalog is unavailable or holds no free
// problems; once the free pool is non-empty the selection never fails,
// falling back to the full pool when a filtered candidate set is empty.
// The two picks are independent draws and may coincide.
func (s *ProblemService) SelectPair(ctx context.Context, stats domain.UserStats) *domain.ProblemPair {
	ctx, span := s.tracer.Start(ctx, "ProblemService.SelectPair")
	defer span.End()

	span.SetAttributes(attribute.Int("user.total_solved", stats.TotalSolved))

	problems := s.catalog.GetAll(ctx)
	if len(problems) == 0 {
		return nil
	}

	free := lo.Filter(problems, func(p domain.Problem, _ int) bool {
		return !p.PaidOnly
	})
	if len(free) == 0 {
		s.logger.Warn("No free problems in catalog")
		return nil
	}

	speedSet, knowledgeSet := difficultySets(stats.TotalSolved)

	speedCandidates := lo.Filter(free, func(p domain.Problem, _ int) bool {
		return lo.Contains(speedSet, p.Difficulty) && p.AcRate > speedMinAcRate
	})
	knowledgeCandidates := lo.Filter(free, func(p domain.Problem, _ int) bool {
		return lo.Contains(knowledgeSet, p.Difficulty) && p.AcRate < knowledgeMaxAcRate
	})

	span.SetAttributes(
		attribute.Int("candidates.speed", len(speedCandidates)),
		attribute.Int("candidates.knowledge", len(knowledgeCandidates)),
	)

	pair := &domain.ProblemPair{
		Speed:     s.pickOne(speedCandidates, free),
		Knowledge: s.pickOne(knowledgeCandidates, free),
	}

	s.logger.Info("Problem pair selected",
		zap.Int("total_solved", stats.TotalSolved),
		zap.String("speed", pair.Speed.TitleSlug),
		zap.String("knowledge", pair.Knowledge.TitleSlug),
	)

	return pair
}

// RandomProblem returns a uniform random free problem, optionally
// filtered by difficulty. The filter is ignored when it would empty the
// set. Returns nil when the catalog is unavailable or no free problem
// remains.
func (s *ProblemService) RandomProblem(ctx context.Context, difficulty string) *domain.Problem {
	ctx, span := s.tracer.Start(ctx, "ProblemService.RandomProblem")
	defer span.End()

	problems := s.catalog.GetAll(ctx)
	if len(problems) == 0 {
		return nil
	}

	if parsed, ok := domain.ParseDifficulty(difficulty); ok {
		filtered := lo.Filter(problems, func(p domain.Problem, _ int) bool {
			return p.Difficulty == parsed
		})
		if len(filtered) > 0 {
			problems = filtered
		}
		span.SetAttributes(attribute.String("filter.difficulty", string(parsed)))
	}

	free := lo.Filter(problems, func(p domain.Problem, _ int) bool {
		return !p.PaidOnly
	})
	if len(free) == 0 {
		return nil
	}

	pick := free[s.intn(len(free))]
	return &pick
}

// DailyChallenge returns the upstream question of the day, nil on any
// failure. Never cached.
func (s *ProblemService) DailyChallenge(ctx context.Context) *domain.DailyChallenge {
	ctx, span := s.tracer.Start(ctx, "ProblemService.DailyChallenge")
	defer span.End()

	challenge, err := s.challenges.FetchDailyChallenge(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch daily challenge", zap.Error(err))
		return nil
	}
	return challenge
}

// CatalogStats summarizes the cached catalog for the ops endpoints
func (s *ProblemService) CatalogStats(ctx context.Context) *domain.CatalogStats {
	problems := s.catalog.GetAll(ctx)

	stats := &domain.CatalogStats{
		Total:        len(problems),
		ByDifficulty: make(map[domain.Difficulty]int),
	}
	for _, p := range problems {
		stats.ByDifficulty[p.Difficulty]++
	}
	return stats
}

// pickOne draws uniformly from candidates, falling back to the full
// free pool when no candidate matched the filters
func (s *ProblemService) pickOne(candidates, fallback []domain.Problem) domain.Problem {
	pool := candidates
	if len(pool) == 0 {
		pool = fallback
	}
	return pool[s.intn(len(pool))]
}

// intn draws from the shared rng (thread-safe)
func (s *ProblemService) intn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}
