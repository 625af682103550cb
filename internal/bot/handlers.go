package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/domain"
)

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	name := ""
	if msg.From != nil {
		name = msg.From.FirstName
	}
	b.send(msg.Chat.ID, welcomeText(name))
}

func (b *Bot) handleRecommend(ctx context.Context, msg *tgbotapi.Message, logger *zap.Logger) {
	username, err := requireArg(msg)
	if errors.Is(err, domain.ErrInvalidArgument) {
		b.send(msg.Chat.ID, "Please provide your LeetCode username.\nUsage: /recommended2 <username>")
		return
	}

	session, existing, err := b.daily.Recommend(ctx, msg.Chat.ID, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		b.send(msg.Chat.ID, fmt.Sprintf("❌ User %s not found or profile is private.", username))
		return
	case err != nil:
		logger.Warn("Recommendation failed", zap.Error(err))
		b.send(msg.Chat.ID, "❌ Couldn't generate personalized problems. Please try again.")
		return
	}

	if existing {
		b.send(msg.Chat.ID, formatSessionStatus(session))
		return
	}

	b.metrics.RecommendationsServed.Add(ctx, 1)
	b.send(msg.Chat.ID, formatNewPair(session))
}

func (b *Bot) handleSolved(ctx context.Context, msg *tgbotapi.Message, logger *zap.Logger) {
	arg, _ := requireArg(msg)
	kind, ok := domain.ParseProblemKind(arg)
	if !ok {
		b.send(msg.Chat.ID, "Usage: /solved speed OR /solved knowledge")
		return
	}

	session, err := b.daily.MarkSolved(ctx, msg.Chat.ID, kind)
	if errors.Is(err, domain.ErrNoActiveSession) {
		b.send(msg.Chat.ID, "❌ No daily problems found. Use /recommended2 <username> first!")
		return
	}
	if err != nil {
		logger.Warn("Mark solved failed", zap.Error(err))
		b.send(msg.Chat.ID, "⚠️ Something went wrong. Please try again.")
		return
	}

	b.metrics.ProblemsSolved.Add(ctx, 1,
		metric.WithAttributes(attribute.String("problem.kind", string(kind))),
	)

	if kind == domain.KindSpeed {
		b.send(msg.Chat.ID, "⚡ Speed problem marked as solved! Great job! 🎉")
	} else {
		b.send(msg.Chat.ID, "🧠 Knowledge problem marked as solved! Excellent! 🎉")
	}

	if session.Completed() {
		b.send(msg.Chat.ID, "🏆 Amazing! You've completed both daily problems! Keep up the great work!")
	}
}

func (b *Bot) handleStatus(ctx context.Context, msg *tgbotapi.Message) {
	session, err := b.daily.Status(ctx, msg.Chat.ID)
	if err != nil {
		b.send(msg.Chat.ID, "❌ No daily problems found. Use /recommended2 <username> first!")
		return
	}
	b.send(msg.Chat.ID, formatSessionStatus(session))
}

func (b *Bot) handleProfile(ctx context.Context, msg *tgbotapi.Message, logger *zap.Logger) {
	username, err := requireArg(msg)
	if errors.Is(err, domain.ErrInvalidArgument) {
		b.send(msg.Chat.ID, "Please provide a LeetCode username.\nUsage: /profile <username>")
		return
	}

	b.send(msg.Chat.ID, fmt.Sprintf("🔍 Analyzing profile for %s...", username))

	stats, err := b.profiles.FetchStats(ctx, msg.Chat.ID, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		b.send(msg.Chat.ID, fmt.Sprintf("❌ User %s not found or profile is private.", username))
		return
	}
	if err != nil {
		logger.Warn("Profile analysis failed", zap.Error(err))
		b.send(msg.Chat.ID, "⚠️ Couldn't fetch that profile right now. Please try again.")
		return
	}

	b.send(msg.Chat.ID, formatProfile(username, stats))
}

func (b *Bot) handlePlan(ctx context.Context, msg *tgbotapi.Message, logger *zap.Logger) {
	username, err := requireArg(msg)
	if errors.Is(err, domain.ErrInvalidArgument) {
		b.send(msg.Chat.ID, "Please provide a LeetCode username.\nUsage: /plan <username>")
		return
	}

	b.send(msg.Chat.ID, fmt.Sprintf("🧠 Creating personalized study plan for %s...", username))

	stats, err := b.profiles.FetchStats(ctx, msg.Chat.ID, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		b.send(msg.Chat.ID, fmt.Sprintf("❌ User %s not found.", username))
		return
	}
	if err != nil {
		logger.Warn("Plan profile fetch failed", zap.Error(err))
		b.send(msg.Chat.ID, "⚠️ Couldn't fetch that profile right now. Please try again.")
		return
	}

	plan := b.advisor.StudyPlan(ctx, stats,
		fmt.Sprintf("User %s requested a custom LeetCode study plan.", username))
	b.send(msg.Chat.ID, formatStudyPlan(username, plan))
}

func (b *Bot) handleDaily(ctx context.Context, msg *tgbotapi.Message) {
	b.send(msg.Chat.ID, "📅 Fetching today's daily challenge...")

	challenge := b.problems.DailyChallenge(ctx)
	if challenge == nil {
		b.send(msg.Chat.ID, "❌ Couldn't fetch today's daily challenge.")
		return
	}
	b.send(msg.Chat.ID, formatDailyChallenge(challenge))
}

func (b *Bot) handleRandom(ctx context.Context, msg *tgbotapi.Message, difficulty, header string) {
	problem := b.problems.RandomProblem(ctx, difficulty)
	if problem == nil {
		b.send(msg.Chat.ID, "❌ Couldn't fetch a problem right now. Please try again.")
		return
	}
	b.send(msg.Chat.ID, formatProblem(header, problem))
}

func (b *Bot) handleText(msg *tgbotapi.Message) {
	text := strings.ToLower(strings.TrimSpace(msg.Text))
	if reply, ok := greetingReplies[text]; ok {
		b.send(msg.Chat.ID, reply)
		return
	}
	b.send(msg.Chat.ID, fallbackHint)
}

// requireArg returns the first whitespace-separated command argument,
// or domain.ErrInvalidArgument when none was supplied. Surfaced before
// any remote call is made.
func requireArg(msg *tgbotapi.Message) (string, error) {
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) == 0 {
		return "", domain.ErrInvalidArgument
	}
	return fields[0], nil
}
