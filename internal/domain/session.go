package domain

import "strings"

// ProblemKind names one of the two slots in a daily session
type ProblemKind string

const (
	KindSpeed     ProblemKind = "speed"
	KindKnowledge ProblemKind = "knowledge"
)

// ParseProblemKind matches a kind name case-insensitively
func ParseProblemKind(s string) (ProblemKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "speed":
		return KindSpeed, true
	case "knowledge":
		return KindKnowledge, true
	default:
		return "", false
	}
}

// DailySession is the per-user, per-date record of the two recommended
// problems and their solved state. At most one session exists per
// (chat, date) key; a repeat recommendation request the same day reads
// the stored session back unchanged.
type DailySession struct {
	ChatID          int64   `json:"chat_id"`
	Date            string  `json:"date"` // local calendar date, YYYY-MM-DD
	Username        string  `json:"username"`
	Speed           Problem `json:"speed_problem"`
	Knowledge       Problem `json:"knowledge_problem"`
	SolvedSpeed     bool    `json:"solved_speed"`
	SolvedKnowledge bool    `json:"solved_knowledge"`
}

// Completed reports whether both problems are solved. Recomputed on
// every read; there is no separate stored terminal state.
func (s *DailySession) Completed() bool {
	return s.SolvedSpeed && s.SolvedKnowledge
}

// Solved reports whether the named slot is solved
func (s *DailySession) Solved(kind ProblemKind) bool {
	if kind == KindSpeed {
		return s.SolvedSpeed
	}
	return s.SolvedKnowledge
}

// SessionRepository stores daily sessions keyed by (chat, date).
// Old dates are never evicted; a new date key supersedes them for
// future lookups.
type SessionRepository interface {
	Find(chatID int64, date string) (*DailySession, bool)
	Save(session *DailySession)
	MarkSolved(chatID int64, date string, kind ProblemKind) (*DailySession, bool)
	Count() int
}
