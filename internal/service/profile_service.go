package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/domain"
)

// ProfileService fetches remote user profiles and classifies them into
// solved-count statistics
type ProfileService struct {
	source  domain.ProfileSource
	records domain.ProfileRepository
	tracer  trace.Tracer
	logger  *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	source domain.ProfileSource,
	records domain.ProfileRepository,
	tracer trace.Tracer,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		source:  source,
		records: records,
		tracer:  tracer,
		logger:  logger,
	}
}

// ExtractStats converts a raw profile into normalized solved counts.
// Pure: counts are taken per difficulty regardless of record order,
// missing entries default to zero, total is the sum of the three.
func ExtractStats(profile *domain.UserProfile) domain.UserStats {
	stats := domain.UserStats{Ranking: domain.RankingUnknown}
	if profile == nil {
		return stats
	}

	for _, record := range profile.AcSubmissions {
		switch domain.Difficulty(record.Difficulty) {
		case domain.DifficultyEasy:
			stats.EasySolved = record.Count
		case domain.DifficultyMedium:
			stats.MediumSolved = record.Count
		case domain.DifficultyHard:
			stats.HardSolved = record.Count
		}
	}

	stats.TotalSolved = stats.EasySolved + stats.MediumSolved + stats.HardSolved
	stats.Ranking = profile.Ranking
	return stats
}

// FetchStats fetches a user profile and returns its normalized stats,
// recording the result as the chat's last-seen profile. Returns
// domain.ErrUserNotFound when the username has no public profile.
func (s *ProfileService) FetchStats(ctx context.Context, chatID int64, username string) (domain.UserStats, error) {
	ctx, span := s.tracer.Start(ctx, "ProfileService.FetchStats")
	defer span.End()
	span.SetAttributes(attribute.String("profile.username", username))

	profile, err := s.source.FetchProfile(ctx, username)
	if err != nil {
		s.logger.Warn("Profile fetch failed",
			zap.String("username", username),
			zap.Error(err),
		)
		return domain.UserStats{}, err
	}

	stats := ExtractStats(profile)
	s.records.Save(&domain.UserProfileRecord{
		ChatID:    chatID,
		Username:  username,
		Stats:     stats,
		UpdatedAt: time.Now(),
	})

	span.SetAttributes(attribute.Int("profile.total_solved", stats.TotalSolved))
	return stats, nil
}

// LastSeen returns the chat's cached profile record, if any
func (s *ProfileService) LastSeen(chatID int64) (*domain.UserProfileRecord, bool) {
	return s.records.Find(chatID)
}
