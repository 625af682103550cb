package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/domain"
)

const dateLayout = "2006-01-02"

// DailyService orchestrates the daily recommendation flow: profile
// classification, pair selection and the per-day session state machine.
type DailyService struct {
	problems *ProblemService
	profiles *ProfileService
	sessions domain.SessionRepository
	tracer   trace.Tracer
	logger   *zap.Logger
	now      func() time.Time
}

// NewDailyService creates a new daily recommendation service
func NewDailyService(
	problems *ProblemService,
	profiles *ProfileService,
	sessions domain.SessionRepository,
	tracer trace.Tracer,
	logger *zap.Logger,
) *DailyService {
	return &DailyService{
		problems: problems,
		profiles: profiles,
		sessions: sessions,
		tracer:   tracer,
		logger:   logger,
		now:      time.Now,
	}
}

// Today returns the current session date key in the server's local zone
func (s *DailyService) Today() string {
	return s.now().Format(dateLayout)
}

// Recommend returns the chat's daily session, creating it on the first
// successful request of the day. The second return value reports
// whether the session already existed; a repeat request reads the
// stored session back unchanged.
func (s *DailyService) Recommend(ctx context.Context, chatID int64, username string) (*domain.DailySession, bool, error) {
	ctx, span := s.tracer.Start(ctx, "DailyService.Recommend")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("chat.id", chatID),
		attribute.String("profile.username", username),
	)

	today := s.Today()
	if existing, ok := s.sessions.Find(chatID, today); ok {
		span.SetAttributes(attribute.Bool("session.existing", true))
		return existing, true, nil
	}

	stats, err := s.profiles.FetchStats(ctx, chatID, username)
	if err != nil {
		return nil, false, err
	}

	pair := s.problems.SelectPair(ctx, stats)
	if pair == nil {
		return nil, false, domain.ErrCatalogEmpty
	}

	session := &domain.DailySession{
		ChatID:    chatID,
		Date:      today,
		Username:  username,
		Speed:     pair.Speed,
		Knowledge: pair.Knowledge,
	}
	s.sessions.Save(session)

	s.logger.Info("Daily session created",
		zap.Int64("chat_id", chatID),
		zap.String("username", username),
		zap.String("date", today),
	)

	return session, false, nil
}

// MarkSolved flips the named solved flag on today's session. Marking an
// already-solved slot is a no-op that still reports completion when
// both flags read true. Returns domain.ErrNoActiveSession when no
// session exists for today.
func (s *DailyService) MarkSolved(ctx context.Context, chatID int64, kind domain.ProblemKind) (*domain.DailySession, error) {
	ctx, span := s.tracer.Start(ctx, "DailyService.MarkSolved")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("chat.id", chatID),
		attribute.String("session.kind", string(kind)),
	)

	session, ok := s.sessions.MarkSolved(chatID, s.Today(), kind)
	if !ok {
		return nil, domain.ErrNoActiveSession
	}

	s.logger.Info("Problem marked solved",
		zap.Int64("chat_id", chatID),
		zap.String("kind", string(kind)),
		zap.Bool("completed", session.Completed()),
	)

	return session, nil
}

// Status returns today's session, or domain.ErrNoActiveSession when the
// chat has no session for the current date
func (s *DailyService) Status(ctx context.Context, chatID int64) (*domain.DailySession, error) {
	_, span := s.tracer.Start(ctx, "DailyService.Status")
	defer span.End()

	session, ok := s.sessions.Find(chatID, s.Today())
	if !ok {
		return nil, domain.ErrNoActiveSession
	}
	return session, nil
}
