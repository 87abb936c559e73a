package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driven"
	"github.com/custodia-labs/hubfeed/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Options configures a Client.
type Options struct {
	// TokenProvider supplies the access token. Nil means anonymous access.
	TokenProvider driven.TokenProvider

	// BaseURL overrides the API root, e.g. "https://ghe.example.com/api/v3/".
	BaseURL string

	// PerPage is the default page size of list requests.
	PerPage int

	// HTTPClient replaces the token-based HTTP client. Used in tests.
	HTTPClient *http.Client
}

// Client wraps the go-github client and returns raw response bodies.
type Client struct {
	mu            sync.Mutex
	gh            *gh.Client
	opts          Options
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
	perPage       int
}

// NewClient creates a GitHub API client. The underlying HTTP client is
// built lazily on the first request so the token is read only when needed.
func NewClient(opts Options) *Client {
	tp := opts.TokenProvider
	if tp == nil {
		tp = anonymous{}
	}
	limit := UnauthenticatedRateLimit
	if tp.IsAuthenticated() {
		limit = GitHubRateLimit
	}
	return &Client{
		opts:          opts,
		tokenProvider: tp,
		rateLimiter:   NewRateLimiter(limit),
		perPage:       domain.ClampPerPage(opts.PerPage),
	}
}

// ensureClient initializes the go-github client if not already done.
func (c *Client) ensureClient(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gh != nil {
		return nil
	}

	httpClient := c.opts.HTTPClient
	if httpClient == nil {
		token, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
		if token != "" {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
			httpClient = oauth2.NewClient(ctx, ts)
		} else {
			httpClient = &http.Client{}
		}
		httpClient.Timeout = DefaultTimeout
	}

	client := gh.NewClient(httpClient)
	if c.opts.BaseURL != "" {
		base, err := parseBaseURL(c.opts.BaseURL)
		if err != nil {
			return err
		}
		client.BaseURL = base
	}

	logger.Debug("github client ready (base=%s, auth=%s)", client.BaseURL, c.tokenProvider.AuthMethod())
	c.gh = client
	return nil
}

// parseBaseURL validates an API root and ensures a trailing slash.
func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", raw)
	}
	return u, nil
}

// fetch issues one GET request and returns the untouched body.
func (c *Client) fetch(ctx context.Context, kind domain.ResourceKind, path string) (*domain.RawResource, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := c.gh.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	logger.Debug("GET %s", req.URL)

	var body json.RawMessage
	resp, err := c.gh.Do(ctx, req, &body)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "get "+kind.String())
	}

	logger.Debug("%s: %d bytes, %d requests remaining", kind, len(body), c.rateLimiter.Remaining())

	return &domain.RawResource{
		Kind:     kind,
		URI:      req.URL.String(),
		Content:  body,
		NextPage: resp.NextPage,
	}, nil
}

// RateLimit returns the current core rate limit status. The call does
// not count against the quota.
func (c *Client) RateLimit(ctx context.Context) (domain.RateStatus, error) {
	if err := c.ensureClient(ctx); err != nil {
		return domain.RateStatus{}, err
	}

	limits, resp, err := c.gh.RateLimit.Get(ctx)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return domain.RateStatus{}, c.wrapError(err, "get rate limit")
	}

	core := limits.GetCore()
	if core == nil {
		return domain.RateStatus{}, fmt.Errorf("get rate limit: %w", domain.ErrNotFound)
	}
	return domain.RateStatus{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		Reset:     core.Reset.Time,
	}, nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// anonymous is the token provider used when none is supplied.
type anonymous struct{}

func (anonymous) GetToken(context.Context) (string, error) { return "", nil }
func (anonymous) AuthMethod() domain.AuthMethod           { return domain.AuthMethodNone }
func (anonymous) IsAuthenticated() bool                   { return false }
