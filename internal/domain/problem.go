package domain

import (
	"context"
	"strings"
)

// Difficulty represents the difficulty level of a problem
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Weight returns a numeric weight for sorting by difficulty
func (d Difficulty) Weight() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// ParseDifficulty matches a difficulty name case-insensitively.
// Returns false when the input names no known difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EASY":
		return DifficultyEasy, true
	case "MEDIUM":
		return DifficultyMedium, true
	case "HARD":
		return DifficultyHard, true
	default:
		return "", false
	}
}

// TopicTag is a topic label attached to a problem
type TopicTag struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Slug string `json:"slug"`
}

// Problem represents a single entry of the LeetCode problem catalog.
// Problems are immutable once cached.
type Problem struct {
	Title      string     `json:"title"`
	TitleSlug  string     `json:"titleSlug"`
	FrontendID string     `json:"frontendQuestionId"`
	Difficulty Difficulty `json:"difficulty"`
	AcRate     float64    `json:"acRate"`
	PaidOnly   bool       `json:"paidOnly"`
	TopicTags  []TopicTag `json:"topicTags"`
}

// URL returns the public problem page for this problem
func (p *Problem) URL() string {
	return "https://leetcode.com/problems/" + p.TitleSlug + "/"
}

// TopicNames returns up to max topic tag names
func (p *Problem) TopicNames(max int) []string {
	names := make([]string, 0, len(p.TopicTags))
	for _, t := range p.TopicTags {
		if len(names) == max {
			break
		}
		names = append(names, t.Name)
	}
	return names
}

// ProblemPair holds one speed and one knowledge recommendation.
// The two picks are independent draws and may coincide.
type ProblemPair struct {
	Speed     Problem `json:"speed_problem"`
	Knowledge Problem `json:"knowledge_problem"`
}

// DailyChallenge is the upstream "question of the day" record,
// returned verbatim and never cached.
type DailyChallenge struct {
	Date     string  `json:"date"`
	Link     string  `json:"link"`
	Question Problem `json:"question"`
}

// ProblemCatalog serves the cached problem set. An empty result means the
// catalog could not be loaded yet, not that zero problems exist upstream.
type ProblemCatalog interface {
	GetAll(ctx context.Context) []Problem
	Size() int
}

// CatalogSource fetches the full problem list from the remote catalog
type CatalogSource interface {
	FetchProblems(ctx context.Context, limit int) ([]Problem, error)
}

// ChallengeSource fetches today's featured problem from the remote source
type ChallengeSource interface {
	FetchDailyChallenge(ctx context.Context) (*DailyChallenge, error)
}

// CatalogStats summarizes the cached problem set for the ops endpoints
type CatalogStats struct {
	Total        int                `json:"total"`
	ByDifficulty map[Difficulty]int `json:"by_difficulty"`
}
