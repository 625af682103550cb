package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/domain"
)

// FallbackAdvice is returned whenever the text-generation source fails
// or is not configured
const FallbackAdvice = "AI service temporarily unavailable. Please try again later."

// textGenerator is the contract the advisor needs from a
// text-generation source
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AdvisorService relays AI-generated study plans built from user stats
type AdvisorService struct {
	generator textGenerator
	tracer    trace.Tracer
	logger    *zap.Logger
}

// NewAdvisorService creates a new advisor service. A nil generator is
// allowed; every request then gets the fallback string.
func NewAdvisorService(generator textGenerator, tracer trace.Tracer, logger *zap.Logger) *AdvisorService {
	return &AdvisorService{
		generator: generator,
		tracer:    tracer,
		logger:    logger,
	}
}

// StudyPlan asks the text-generation source for a personalized study
// plan. Failures are absorbed into the fixed fallback string, never
// propagated.
func (s *AdvisorService) StudyPlan(ctx context.Context, stats domain.UserStats, reason string) string {
	ctx, span := s.tracer.Start(ctx, "AdvisorService.StudyPlan")
	defer span.End()

	if s.generator == nil {
		return FallbackAdvice
	}

	prompt := buildStudyPlanPrompt(stats, reason)
	plan, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("Study plan generation failed", zap.Error(err))
		return FallbackAdvice
	}
	return plan
}

func buildStudyPlanPrompt(stats domain.UserStats, reason string) string {
	return fmt.Sprintf(`As a LeetCode mentor, provide a detailed, personalized 4-week study plan for the following user:
User Statistics:
- Problems Solved: %d
- Easy Problems: %d
- Medium Problems: %d
- Hard Problems: %d
- Current Ranking: %s
Context: %s
The plan should include daily targets, focus topics, and actionable strategies.`,
		stats.TotalSolved,
		stats.EasySolved,
		stats.MediumSolved,
		stats.HardSolved,
		stats.RankingDisplay(),
		reason,
	)
}
