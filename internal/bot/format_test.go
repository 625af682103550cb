package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leetmentor/bot/internal/domain"
)

func testSession() *domain.DailySession {
	return &domain.DailySession{
		ChatID:   1,
		Date:     "2026-08-31",
		Username: "alice",
		Speed: domain.Problem{
			Title: "Two Sum", TitleSlug: "two-sum", FrontendID: "1",
			Difficulty: domain.DifficultyEasy, AcRate: 54.3,
		},
		Knowledge: domain.Problem{
			Title: "Word Ladder", TitleSlug: "word-ladder", FrontendID: "127",
			Difficulty: domain.DifficultyHard, AcRate: 42.0,
		},
	}
}

func TestFormatNewPair(t *testing.T) {
	text := formatNewPair(testSession())

	assert.Contains(t, text, "Daily Problems for alice")
	assert.Contains(t, text, "#1 - Two Sum")
	assert.Contains(t, text, "#127 - Word Ladder")
	assert.Contains(t, text, "leetcode.com/problems/two-sum")
	assert.Contains(t, text, "Acceptance: 54.3%")
}

func TestFormatSessionStatus(t *testing.T) {
	session := testSession()
	session.SolvedSpeed = true

	text := formatSessionStatus(session)
	assert.Contains(t, text, "SPEED PROBLEM - ✅ SOLVED")
	assert.Contains(t, text, "KNOWLEDGE PROBLEM - ⏳ PENDING")
	assert.Contains(t, text, "/solved speed or /solved knowledge")

	session.SolvedKnowledge = true
	text = formatSessionStatus(session)
	assert.Contains(t, text, "All problems solved for today!")
}

func TestFormatProblemTopics(t *testing.T) {
	p := &domain.Problem{
		Title: "LRU Cache", TitleSlug: "lru-cache", FrontendID: "146",
		Difficulty: domain.DifficultyMedium, AcRate: 43.1,
		TopicTags: []domain.TopicTag{
			{Name: "Hash Table"}, {Name: "Linked List"}, {Name: "Design"},
		},
	}

	text := formatProblem("🎲 Random Problem", p)
	assert.Contains(t, text, "🎲 Random Problem #146")
	assert.Contains(t, text, "Hash Table, Linked List, Design")
	assert.Contains(t, text, "Difficulty: Medium")
}

func TestFormatProfile(t *testing.T) {
	stats := domain.UserStats{
		TotalSolved: 182, EasySolved: 120, MediumSolved: 55, HardSolved: 7,
		Ranking: 12345,
	}

	text := formatProfile("alice", stats)
	assert.Contains(t, text, "Profile Analysis: alice")
	assert.Contains(t, text, "Total Solved: 182")
	assert.Contains(t, text, "Skill Level: Intermediate")
	assert.Contains(t, text, "Global Ranking: 12345")
}

func TestFormatProfileUnknownRanking(t *testing.T) {
	text := formatProfile("fresh", domain.UserStats{})
	assert.Contains(t, text, "Global Ranking: unknown")
	assert.Contains(t, text, "Ready to start your LeetCode journey!")
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "bold and code", stripMarkup("*bold* and `code`"))
}

func TestWelcomeTextDefaultsName(t *testing.T) {
	assert.Contains(t, welcomeText(""), "Welcome there!")
	assert.Contains(t, welcomeText("Alice"), "Welcome Alice!")
}
