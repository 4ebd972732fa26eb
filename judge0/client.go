package judge0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultPollInterval    = 1 * time.Second
	defaultMaxPollAttempts = 30
)

// Config holds the judge service endpoint and credentials. The base URL and
// API key are injected here instead of being read from the environment inside
// the client so that tests can point the client at a fake judge.
type Config struct {
	BaseURL string // e.g. https://judge0-ce.p.rapidapi.com
	ApiKey  string // RapidAPI key, optional for self-hosted instances
	ApiHost string // RapidAPI host header, optional

	PollInterval    time.Duration // 0 means the 1s default
	MaxPollAttempts int           // 0 means the default of 30
}

// Client is a stateless adapter to the Judge0 batch REST API.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger

	baseUrl string
	apiKey  string
	apiHost string

	pollInterval    time.Duration
	maxPollAttempts int
}

func NewClient(cfg Config) *Client {
	pollInterval := cfg.PollInterval
	if pollInterval == 0 {
		pollInterval = defaultPollInterval
	}
	maxPollAttempts := cfg.MaxPollAttempts
	if maxPollAttempts == 0 {
		maxPollAttempts = defaultMaxPollAttempts
	}
	return &Client{
		httpClient:      &http.Client{Timeout: 20 * time.Second},
		logger:          slog.Default().With("module", "judge0"),
		baseUrl:         strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:          cfg.ApiKey,
		apiHost:         cfg.ApiHost,
		pollInterval:    pollInterval,
		maxPollAttempts: maxPollAttempts,
	}
}

// SubmitBatch sends all requests to the judge as one batch and returns one
// opaque token per request, order preserved. Any transport or service
// failure surfaces as ErrJudgeUnavailable; the caller is expected to abort
// the whole evaluation rather than proceed with partial tokens.
func (c *Client) SubmitBatch(ctx context.Context, reqs []SubmissionRequest) ([]string, error) {
	body, err := json.Marshal(struct {
		Submissions []SubmissionRequest `json:"submissions"`
	}{Submissions: reqs})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal judge batch: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseUrl+"/submissions/batch?base64_encoded=false", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build judge batch request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, ErrJudgeUnavailable().SetDebug(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrJudgeUnavailable().SetDebug(
			fmt.Errorf("judge batch submit returned status %d", resp.StatusCode))
	}

	var created []struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, ErrJudgeUnavailable().SetDebug(
			fmt.Errorf("failed to decode judge batch response: %w", err))
	}
	if len(created) != len(reqs) {
		return nil, ErrJudgeUnavailable().SetDebug(
			fmt.Errorf("judge returned %d tokens for %d submissions", len(created), len(reqs)))
	}

	tokens := make([]string, len(created))
	for i := range created {
		tokens[i] = created[i].Token
	}
	return tokens, nil
}

// AwaitResults polls the judge by token set until every token has reached a
// terminal status. Polls are one interval apart, up to maxPollAttempts; a
// transient fetch failure consumes one attempt instead of aborting. The
// returned slice is order-matched to the token slice. Exhausting the budget
// surfaces as ErrJudgeTimeout.
func (c *Client) AwaitResults(ctx context.Context, tokens []string) ([]SubmissionResult, error) {
	for attempt := 0; attempt < c.maxPollAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.pollInterval):
			}
		}

		results, err := c.fetchBatch(ctx, tokens)
		if err != nil {
			c.logger.Warn("judge result fetch failed", "attempt", attempt+1, "error", err)
			continue
		}

		if allTerminal(results) {
			return results, nil
		}
	}

	return nil, ErrJudgeTimeout()
}

func (c *Client) fetchBatch(ctx context.Context, tokens []string) ([]SubmissionResult, error) {
	query := url.Values{}
	query.Set("tokens", strings.Join(tokens, ","))
	query.Set("base64_encoded", "false")
	query.Set("fields", "*")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseUrl+"/submissions/batch?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build judge fetch request: %w", err)
	}
	c.setAuthHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("judge result fetch returned status %d", resp.StatusCode)
	}

	var fetched struct {
		Submissions []SubmissionResult `json:"submissions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		return nil, fmt.Errorf("failed to decode judge results: %w", err)
	}
	if len(fetched.Submissions) != len(tokens) {
		return nil, fmt.Errorf("judge returned %d results for %d tokens",
			len(fetched.Submissions), len(tokens))
	}

	return fetched.Submissions, nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("x-rapidapi-key", c.apiKey)
	}
	if c.apiHost != "" {
		req.Header.Set("x-rapidapi-host", c.apiHost)
	}
}

func allTerminal(results []SubmissionResult) bool {
	for _, res := range results {
		if !res.Status.IsTerminal() {
			return false
		}
	}
	return true
}
