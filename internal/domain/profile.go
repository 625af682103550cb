package domain

import (
	"context"
	"strconv"
	"time"
)

// RankingUnknown is the sentinel used when the upstream profile carries
// no ranking field.
const RankingUnknown = 0

// SubmissionCount is one (difficulty, count) accepted-submission record
// as reported by the profile source. Record order is not guaranteed.
type SubmissionCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// UserProfile is the normalized remote profile payload the classifier
// reads. A nil profile means the user does not exist or is private.
type UserProfile struct {
	Username      string
	Ranking       int
	AcSubmissions []SubmissionCount
}

// UserStats holds solved-problem counts derived from a user profile.
// Computed fresh on every profile request, never cached long-term.
type UserStats struct {
	TotalSolved  int `json:"total_solved"`
	EasySolved   int `json:"easy_solved"`
	MediumSolved int `json:"medium_solved"`
	HardSolved   int `json:"hard_solved"`
	Ranking      int `json:"ranking"`
}

// RankingDisplay renders the ranking, or "unknown" when absent upstream
func (s UserStats) RankingDisplay() string {
	if s.Ranking <= RankingUnknown {
		return "unknown"
	}
	return strconv.Itoa(s.Ranking)
}

// SkillLevel is a display bracket derived from the total solved count
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelLearning     SkillLevel = "Learning"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// Level maps the total solved count onto a skill bracket
func (s UserStats) Level() SkillLevel {
	switch {
	case s.TotalSolved < 50:
		return LevelBeginner
	case s.TotalSolved < 150:
		return LevelLearning
	case s.TotalSolved < 300:
		return LevelIntermediate
	case s.TotalSolved < 500:
		return LevelAdvanced
	default:
		return LevelExpert
	}
}

// Insight returns a one-line reading of the solved-count distribution
func (s UserStats) Insight() string {
	total, easy, medium, hard := s.TotalSolved, s.EasySolved, s.MediumSolved, s.HardSolved
	switch {
	case total == 0:
		return "Ready to start your LeetCode journey!"
	case total < 10:
		return "Great start! Focus on easy problems to build confidence"
	case easy > medium*2 && medium > 0:
		return "Focus more on medium problems to level up your skills"
	case medium > easy && total > 50:
		return "Great balance! Consider adding more hard problems to your practice"
	case hard > medium && total > 100:
		return "Impressive hard problem solving! You're at an advanced level"
	case easy+medium+hard != total:
		return "Keep solving problems consistently across all difficulty levels"
	default:
		return "Steady progress across all difficulty levels - keep it up!"
	}
}

// UserProfileRecord is the last-seen profile of a chat user. Display
// cache only, overwritten on each profile-bearing request.
type UserProfileRecord struct {
	ChatID    int64     `json:"chat_id"`
	Username  string    `json:"username"`
	Stats     UserStats `json:"stats"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileSource fetches a remote user profile by username.
// Returns ErrUserNotFound when the user does not exist or is private.
type ProfileSource interface {
	FetchProfile(ctx context.Context, username string) (*UserProfile, error)
}

// ProfileRepository stores the last-seen profile per chat user
type ProfileRepository interface {
	Find(chatID int64) (*UserProfileRecord, bool)
	Save(record *UserProfileRecord)
	Count() int
}
