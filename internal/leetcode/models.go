package leetcode

import (
	"encoding/json"

	"github.com/leetmentor/bot/internal/domain"
)

// Wire types for the GraphQL endpoint. Kept separate from domain types
// so upstream schema drift stays contained in this package.

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type problemSetData struct {
	ProblemsetQuestionList struct {
		Total     int            `json:"total"`
		Questions []questionNode `json:"questions"`
	} `json:"problemsetQuestionList"`
}

type questionNode struct {
	AcRate     float64        `json:"acRate"`
	Difficulty string         `json:"difficulty"`
	FrontendID string         `json:"frontendQuestionId"`
	PaidOnly   bool           `json:"paidOnly"`
	Title      string         `json:"title"`
	TitleSlug  string         `json:"titleSlug"`
	TopicTags  []topicTagNode `json:"topicTags"`
}

type topicTagNode struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Slug string `json:"slug"`
}

type matchedUserData struct {
	MatchedUser *matchedUserNode `json:"matchedUser"`
}

type matchedUserNode struct {
	Username string `json:"username"`
	Profile  struct {
		Ranking int `json:"ranking"`
	} `json:"profile"`
	SubmitStats struct {
		AcSubmissionNum []submissionCountNode `json:"acSubmissionNum"`
	} `json:"submitStats"`
}

type submissionCountNode struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

type dailyChallengeData struct {
	ActiveDailyCodingChallengeQuestion *struct {
		Date     string       `json:"date"`
		Link     string       `json:"link"`
		Question questionNode `json:"question"`
	} `json:"activeDailyCodingChallengeQuestion"`
}

func (q questionNode) toDomain() domain.Problem {
	tags := make([]domain.TopicTag, len(q.TopicTags))
	for i, t := range q.TopicTags {
		tags[i] = domain.TopicTag{Name: t.Name, ID: t.ID, Slug: t.Slug}
	}
	return domain.Problem{
		Title:      q.Title,
		TitleSlug:  q.TitleSlug,
		FrontendID: q.FrontendID,
		Difficulty: domain.Difficulty(q.Difficulty),
		AcRate:     q.AcRate,
		PaidOnly:   q.PaidOnly,
		TopicTags:  tags,
	}
}
