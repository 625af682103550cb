package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/domain"
	"github.com/leetmentor/bot/internal/infrastructure"
)

const contentTypeJSON = "application/json"

// Client talks to the LeetCode GraphQL endpoint. It implements
// domain.CatalogSource, domain.ProfileSource and domain.ChallengeSource.
// Failed or timed-out calls are not retried here; callers decide.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	catalogTimeout   time.Duration
	profileTimeout   time.Duration
	challengeTimeout time.Duration
	tracer           trace.Tracer
	logger           *zap.Logger
}

// NewClient creates a new LeetCode API client
func NewClient(config *infrastructure.LeetCodeConfig, tracer trace.Tracer, logger *zap.Logger) *Client {
	return &Client{
		baseURL:          config.BaseURL,
		httpClient:       &http.Client{},
		catalogTimeout:   config.CatalogTimeout,
		profileTimeout:   config.ProfileTimeout,
		challengeTimeout: config.ChallengeTimeout,
		tracer:           tracer,
		logger:           logger,
	}
}

// FetchProblems retrieves up to limit problems from the catalog source.
// Single page, no pagination beyond the first.
func (c *Client) FetchProblems(ctx context.Context, limit int) ([]domain.Problem, error) {
	ctx, span := c.tracer.Start(ctx, "leetcode.FetchProblems")
	defer span.End()
	span.SetAttributes(attribute.Int("catalog.limit", limit))

	variables := map[string]any{
		"categorySlug": "",
		"skip":         0,
		"limit":        limit,
		"filters":      map[string]any{},
	}

	var data problemSetData
	if err := c.post(ctx, problemSetQuery, variables, c.catalogTimeout, &data); err != nil {
		return nil, err
	}

	questions := data.ProblemsetQuestionList.Questions
	problems := make([]domain.Problem, len(questions))
	for i, q := range questions {
		problems[i] = q.toDomain()
	}

	span.SetAttributes(attribute.Int("catalog.fetched", len(problems)))
	return problems, nil
}

// FetchProfile retrieves a user profile by username. Returns
// domain.ErrUserNotFound when the user does not exist or is private.
func (c *Client) FetchProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	ctx, span := c.tracer.Start(ctx, "leetcode.FetchProfile")
	defer span.End()
	span.SetAttributes(attribute.String("profile.username", username))

	var data matchedUserData
	if err := c.post(ctx, userProfileQuery, map[string]any{"username": username}, c.profileTimeout, &data); err != nil {
		return nil, err
	}

	if data.MatchedUser == nil {
		return nil, domain.ErrUserNotFound
	}

	counts := make([]domain.SubmissionCount, len(data.MatchedUser.SubmitStats.AcSubmissionNum))
	for i, n := range data.MatchedUser.SubmitStats.AcSubmissionNum {
		counts[i] = domain.SubmissionCount{Difficulty: n.Difficulty, Count: n.Count}
	}

	return &domain.UserProfile{
		Username:      data.MatchedUser.Username,
		Ranking:       data.MatchedUser.Profile.Ranking,
		AcSubmissions: counts,
	}, nil
}

// FetchDailyChallenge retrieves today's featured problem
func (c *Client) FetchDailyChallenge(ctx context.Context) (*domain.DailyChallenge, error) {
	ctx, span := c.tracer.Start(ctx, "leetcode.FetchDailyChallenge")
	defer span.End()

	var data dailyChallengeData
	if err := c.post(ctx, dailyChallengeQuery, nil, c.challengeTimeout, &data); err != nil {
		return nil, err
	}

	active := data.ActiveDailyCodingChallengeQuestion
	if active == nil {
		return nil, domain.WrapError(domain.ErrUpstreamUnavailable, "daily challenge payload missing")
	}

	return &domain.DailyChallenge{
		Date:     active.Date,
		Link:     active.Link,
		Question: active.Question.toDomain(),
	}, nil
}

// post issues one GraphQL round trip and decodes the data envelope
func (c *Client) post(ctx context.Context, query string, variables map[string]any, timeout time.Duration, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return domain.WrapError(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return domain.WrapError(err, "failed to build request")
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	infrastructure.LogUpstreamCall(c.logger, "leetcode.graphql", time.Since(start), err)
	if err != nil {
		return domain.WrapError(domain.ErrUpstreamUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("LeetCode API returned non-200 status",
			zap.Int("status", resp.StatusCode),
		)
		return domain.WrapError(domain.ErrUpstreamUnavailable,
			fmt.Sprintf("leetcode api status %d", resp.StatusCode))
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return domain.WrapError(domain.ErrUpstreamUnavailable, "malformed response payload")
	}
	if len(envelope.Errors) > 0 {
		return domain.WrapError(domain.ErrUpstreamUnavailable, envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return domain.WrapError(domain.ErrUpstreamUnavailable, "malformed data payload")
	}
	return nil
}
