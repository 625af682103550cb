package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/infrastructure"
	"github.com/leetmentor/bot/internal/service"
)

// Bot wires the Telegram transport to the recommendation core. One
// goroutine handles each incoming update; the core guards its own
// shared state.
type Bot struct {
	api         *tgbotapi.BotAPI
	daily       *service.DailyService
	problems    *service.ProblemService
	profiles    *service.ProfileService
	advisor     *service.AdvisorService
	metrics     *infrastructure.TelemetryMetrics
	tracer      trace.Tracer
	logger      *zap.Logger
	pollTimeout int
}

// New creates the bot and authenticates against the Telegram API
func New(
	config *infrastructure.TelegramConfig,
	daily *service.DailyService,
	problems *service.ProblemService,
	profiles *service.ProfileService,
	advisor *service.AdvisorService,
	metrics *infrastructure.TelemetryMetrics,
	tracer trace.Tracer,
	logger *zap.Logger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = config.Debug

	logger.Info("Authorized on Telegram",
		zap.String("bot_username", api.Self.UserName),
	)

	return &Bot{
		api:         api,
		daily:       daily,
		problems:    problems,
		profiles:    profiles,
		advisor:     advisor,
		metrics:     metrics,
		tracer:      tracer,
		logger:      logger,
		pollTimeout: config.PollTimeout,
	}, nil
}

// Run starts long polling and blocks until the context is cancelled
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches one update. A panic in a handler is recovered
// so a single bad request never takes the process down.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	command := "text"
	if msg.IsCommand() {
		command = msg.Command()
	}

	updateID := uuid.New().String()
	logger := infrastructure.CommandLogger(b.logger, updateID, msg.Chat.ID, command)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic recovered in command handler",
				zap.Any("error", r),
				zap.Stack("stack"),
			)
			b.send(msg.Chat.ID, "⚠️ Something went wrong. Please try again.")
		}
	}()

	ctx, span := b.tracer.Start(ctx, "bot.handleUpdate",
		trace.WithAttributes(
			attribute.String("bot.command", command),
			attribute.String("update.id", updateID),
		),
	)
	defer span.End()

	start := time.Now()
	b.dispatch(ctx, msg, logger)
	duration := time.Since(start)

	attrs := metric.WithAttributes(attribute.String("bot.command", command))
	b.metrics.CommandDuration.Record(ctx, duration.Seconds(), attrs)
	b.metrics.CommandCount.Add(ctx, 1, attrs)

	logger.Info("Command handled", zap.Duration("duration", duration))
}

func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message, logger *zap.Logger) {
	if !msg.IsCommand() {
		b.handleText(msg)
		return
	}

	switch msg.Command() {
	case "start":
		b.handleStart(msg)
	case "help":
		b.send(msg.Chat.ID, helpText)
	case "recommended2":
		b.handleRecommend(ctx, msg, logger)
	case "solved":
		b.handleSolved(ctx, msg, logger)
	case "mystatus":
		b.handleStatus(ctx, msg)
	case "profile":
		b.handleProfile(ctx, msg, logger)
	case "plan":
		b.handlePlan(ctx, msg, logger)
	case "daily":
		b.handleDaily(ctx, msg)
	case "random":
		b.handleRandom(ctx, msg, "", "🎲 Random Problem")
	case "easy":
		b.handleRandom(ctx, msg, "Easy", "🟢 Easy Problem")
	case "medium":
		b.handleRandom(ctx, msg, "Medium", "🟡 Medium Problem")
	case "hard":
		b.handleRandom(ctx, msg, "Hard", "🔴 Hard Problem")
	default:
		b.send(msg.Chat.ID, "Unknown command. Use /help to see all commands.")
	}
}

// send delivers a message, retrying once with markup stripped when the
// first attempt is rejected
func (b *Bot) send(chatID int64, text string) {
	reply := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Warn("Message send failed, retrying without markup", zap.Error(err))
		plain := tgbotapi.NewMessage(chatID, stripMarkup(text))
		if _, err := b.api.Send(plain); err != nil {
			b.logger.Error("Fallback message send failed", zap.Error(err))
		}
	}
}
