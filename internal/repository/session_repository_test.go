package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leetmentor/bot/internal/domain"
)

func newSession(chatID int64, date string) *domain.DailySession {
	return &domain.DailySession{
		ChatID:    chatID,
		Date:      date,
		Username:  "alice",
		Speed:     domain.Problem{TitleSlug: "two-sum", Difficulty: domain.DifficultyEasy},
		Knowledge: domain.Problem{TitleSlug: "word-ladder", Difficulty: domain.DifficultyHard},
	}
}

func TestSessionRepositoryFindMissing(t *testing.T) {
	repo := NewSessionRepository()

	_, ok := repo.Find(1, "2026-08-31")
	assert.False(t, ok)
}

func TestSessionRepositorySaveAndFind(t *testing.T) {
	repo := NewSessionRepository()
	repo.Save(newSession(1, "2026-08-31"))

	got, ok := repo.Find(1, "2026-08-31")
	require.True(t, ok)
	assert.Equal(t, "two-sum", got.Speed.TitleSlug)
	assert.False(t, got.SolvedSpeed)
	assert.False(t, got.SolvedKnowledge)

	// Mutating the returned copy must not leak into the store
	got.SolvedSpeed = true
	again, _ := repo.Find(1, "2026-08-31")
	assert.False(t, again.SolvedSpeed)
}

func TestSessionRepositoryKeysByDate(t *testing.T) {
	repo := NewSessionRepository()
	repo.Save(newSession(1, "2026-08-30"))
	repo.Save(newSession(1, "2026-08-31"))

	_, ok := repo.Find(1, "2026-08-30")
	assert.True(t, ok, "older dates stay in memory")
	assert.Equal(t, 2, repo.Count())
}

func TestSessionRepositoryMarkSolved(t *testing.T) {
	repo := NewSessionRepository()
	repo.Save(newSession(7, "2026-08-31"))

	got, ok := repo.MarkSolved(7, "2026-08-31", domain.KindSpeed)
	require.True(t, ok)
	assert.True(t, got.SolvedSpeed)
	assert.False(t, got.SolvedKnowledge)
	assert.False(t, got.Completed())

	// Marking the same slot again is a no-op, not an error
	got, ok = repo.MarkSolved(7, "2026-08-31", domain.KindSpeed)
	require.True(t, ok)
	assert.True(t, got.SolvedSpeed)

	got, ok = repo.MarkSolved(7, "2026-08-31", domain.KindKnowledge)
	require.True(t, ok)
	assert.True(t, got.Completed())
}

func TestSessionRepositoryMarkSolvedMissing(t *testing.T) {
	repo := NewSessionRepository()

	_, ok := repo.MarkSolved(7, "2026-08-31", domain.KindSpeed)
	assert.False(t, ok)
}

func TestProfileRepositoryOverwrites(t *testing.T) {
	repo := NewProfileRepository()

	repo.Save(&domain.UserProfileRecord{ChatID: 1, Username: "alice"})
	repo.Save(&domain.UserProfileRecord{ChatID: 1, Username: "bob"})

	got, ok := repo.Find(1)
	require.True(t, ok)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, 1, repo.Count())
}
