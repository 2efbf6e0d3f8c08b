package insight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"NeoWatch/internal/service/cache"
	"NeoWatch/internal/service/metrics"
	"NeoWatch/internal/service/ratelimit"
	"NeoWatch/pkg/http"
	"NeoWatch/pkg/logger"
)

const defaultTimeout = 9 * time.Second

var (
	ErrNotConfigured = errors.New("insight service not configured")
	ErrRateLimited   = errors.New("insight request rate limited")
)

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client talks to a chat-completions style generative-text service.
// Responses are cached by prompt hash and calls are rate limited so a
// burst of classification requests cannot exhaust the upstream quota.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	timeout    time.Duration
	cache      cache.BytesCache
	cacheTTL   time.Duration
	limiter    *ratelimit.Limiter
	logger     *logger.Logger
}

type Option func(*Client)

func WithCache(c cache.BytesCache, ttl time.Duration) Option {
	return func(cl *Client) {
		cl.cache = c
		cl.cacheTTL = ttl
	}
}

func WithRateLimit(maxRPS int) Option {
	return func(cl *Client) { cl.limiter = ratelimit.New(maxRPS) }
}

func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(cl *Client) { cl.logger = log }
}

func NewClient(baseURL, apiKey, model string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient = http.NewClient(http.WithTimeout(c.timeout))
	return c
}

// Configured reports whether the client has everything needed to make a
// real call.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != "" && c.model != ""
}

// Complete sends the prompt and returns the first choice's content.
// Cached responses are returned without an upstream call.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	key := cache.Key("insight", c.model+"\n"+prompt)
	if c.cache != nil {
		if b, ok, err := c.cache.GetBytes(key); err == nil && ok {
			metrics.InsightCacheHits.Inc()
			return string(b), nil
		}
	}

	if !c.limiter.Allow() {
		metrics.InsightRequests.WithLabelValues("rate_limited").Inc()
		return "", ErrRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var resp chatResponse
	err := c.httpClient.SendAndParse(ctx, &http.RequestOptions{
		Method: http.MethodPost,
		URL:    c.baseURL + "/chat/completions",
		Headers: map[string]string{
			"Authorization": "Bearer " + c.apiKey,
			"Content-Type":  "application/json",
		},
		Body: chatRequest{
			Model:    c.model,
			Messages: []chatMessage{{Role: "user", Content: prompt}},
		},
	}, &resp)
	if err != nil {
		metrics.InsightRequests.WithLabelValues("error").Inc()
		if c.logger != nil {
			c.logger.Warn("insight request failed", logger.Error(err))
		}
		return "", fmt.Errorf("insight completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		metrics.InsightRequests.WithLabelValues("empty").Inc()
		return "", errors.New("insight completion: empty response")
	}
	metrics.InsightRequests.WithLabelValues("ok").Inc()

	content := resp.Choices[0].Message.Content
	if c.cache != nil {
		if err := c.cache.SetBytes(key, []byte(content), c.cacheTTL); err != nil && c.logger != nil {
			c.logger.Warn("insight cache write failed", logger.Error(err))
		}
	}
	return content, nil
}
