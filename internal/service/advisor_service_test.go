package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/domain"
)

type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

func TestStudyPlanUsesGeneratedText(t *testing.T) {
	generator := &stubGenerator{text: "Week 1: arrays and hashing."}
	svc := NewAdvisorService(generator, otel.Tracer("test"), zap.NewNop())

	stats := domain.UserStats{TotalSolved: 182, EasySolved: 120, MediumSolved: 55, HardSolved: 7, Ranking: 12345}
	plan := svc.StudyPlan(context.Background(), stats, "requested a custom study plan")

	assert.Equal(t, "Week 1: arrays and hashing.", plan)
	assert.Contains(t, generator.prompt, "Problems Solved: 182")
	assert.Contains(t, generator.prompt, "Current Ranking: 12345")
	assert.Contains(t, generator.prompt, "requested a custom study plan")
}

func TestStudyPlanFallsBackOnError(t *testing.T) {
	generator := &stubGenerator{err: errors.New("deadline exceeded")}
	svc := NewAdvisorService(generator, otel.Tracer("test"), zap.NewNop())

	plan := svc.StudyPlan(context.Background(), domain.UserStats{}, "ctx")
	assert.Equal(t, FallbackAdvice, plan)
}

func TestStudyPlanWithoutGenerator(t *testing.T) {
	svc := NewAdvisorService(nil, otel.Tracer("test"), zap.NewNop())

	plan := svc.StudyPlan(context.Background(), domain.UserStats{}, "ctx")
	assert.Equal(t, FallbackAdvice, plan)
}
