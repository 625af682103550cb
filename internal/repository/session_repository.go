package repository

import (
	"sync"

	"github.com/leetmentor/bot/internal/domain"
)

type sessionKey struct {
	chatID int64
	date   string
}

// sessionRepository implements domain.SessionRepository with an
// in-memory map. Entries for past dates are kept; a new date key
// supersedes them for lookups.
type sessionRepository struct {
	mu       sync.Mutex
	sessions map[sessionKey]*domain.DailySession
}

// NewSessionRepository creates a new in-memory session repository
func NewSessionRepository() domain.SessionRepository {
	return &sessionRepository{
		sessions: make(map[sessionKey]*domain.DailySession),
	}
}

// Find returns a copy of the session for (chatID, date), if any
func (r *sessionRepository) Find(chatID int64, date string) (*domain.DailySession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionKey{chatID, date}]
	if !ok {
		return nil, false
	}
	copied := *session
	return &copied, true
}

// Save stores the session, replacing any existing entry for its key
func (r *sessionRepository) Save(session *domain.DailySession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *session
	r.sessions[sessionKey{session.ChatID, session.Date}] = &copied
}

// MarkSolved sets the named solved flag. Flags are only ever set, never
// cleared; marking an already-solved slot is a no-op. Returns false when
// no session exists for the key.
func (r *sessionRepository) MarkSolved(chatID int64, date string, kind domain.ProblemKind) (*domain.DailySession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionKey{chatID, date}]
	if !ok {
		return nil, false
	}

	switch kind {
	case domain.KindSpeed:
		session.SolvedSpeed = true
	case domain.KindKnowledge:
		session.SolvedKnowledge = true
	}

	copied := *session
	return &copied, true
}

// Count returns the number of stored sessions across all dates
func (r *sessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
