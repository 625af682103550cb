package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyWeightOrdering(t *testing.T) {
	assert.Less(t, DifficultyEasy.Weight(), DifficultyMedium.Weight())
	assert.Less(t, DifficultyMedium.Weight(), DifficultyHard.Weight())
	assert.Zero(t, Difficulty("Unrated").Weight())
}

func TestParseDifficulty(t *testing.T) {
	got, ok := ParseDifficulty(" easy ")
	assert.True(t, ok)
	assert.Equal(t, DifficultyEasy, got)

	_, ok = ParseDifficulty("impossible")
	assert.False(t, ok)

	_, ok = ParseDifficulty("")
	assert.False(t, ok)
}

func TestProblemURL(t *testing.T) {
	p := Problem{TitleSlug: "two-sum"}
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", p.URL())
}

func TestTopicNamesCapped(t *testing.T) {
	p := Problem{TopicTags: []TopicTag{
		{Name: "Array"}, {Name: "Hash Table"}, {Name: "Two Pointers"},
	}}
	assert.Equal(t, []string{"Array", "Hash Table"}, p.TopicNames(2))
	assert.Equal(t, []string{"Array", "Hash Table", "Two Pointers"}, p.TopicNames(5))
}

func TestSessionSolvedByKind(t *testing.T) {
	s := DailySession{SolvedSpeed: true}
	assert.True(t, s.Solved(KindSpeed))
	assert.False(t, s.Solved(KindKnowledge))
	assert.False(t, s.Completed())
}
