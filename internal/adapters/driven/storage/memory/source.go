package memory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ResourceSource = (*Source)(nil)

// Source is an in-memory driven.ResourceSource serving fixtures.
// Fixtures are keyed by API path ("users/octocat/repos") and, for lists,
// by page number; page 0 and 1 are the same page.
type Source struct {
	mu       sync.RWMutex
	fixtures map[string]domain.RawResource
	requests []string
	err      error
}

// NewSource creates an empty fixture source.
func NewSource() *Source {
	return &Source{fixtures: make(map[string]domain.RawResource)}
}

// Put stores content for path at page. nextPage is reported as
// RawResource.NextPage.
func (s *Source) Put(path string, page int, kind domain.ResourceKind, content string, nextPage int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixtures[fixtureKey(path, page)] = domain.RawResource{
		Kind:     kind,
		URI:      "memory://" + path,
		Content:  []byte(content),
		NextPage: nextPage,
	}
}

// FailWith makes every subsequent request return err.
func (s *Source) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Requests returns the keys requested so far, in order.
func (s *Source) Requests() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.requests...)
}

// ListUserRepos serves users/{user}/repos.
func (s *Source) ListUserRepos(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return s.get(ctx, page.Number, "users", user, "repos")
}

// ListStarred serves users/{user}/starred.
func (s *Source) ListStarred(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return s.get(ctx, page.Number, "users", user, "starred")
}

// ListFollowers serves users/{user}/followers.
func (s *Source) ListFollowers(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return s.get(ctx, page.Number, "users", user, "followers")
}

// ListFollowing serves users/{user}/following.
func (s *Source) ListFollowing(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return s.get(ctx, page.Number, "users", user, "following")
}

// ListStargazers serves repos/{owner}/{repo}/stargazers.
func (s *Source) ListStargazers(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error) {
	return s.get(ctx, page.Number, "repos", owner, repo, "stargazers")
}

// ListForks serves repos/{owner}/{repo}/forks.
func (s *Source) ListForks(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error) {
	return s.get(ctx, page.Number, "repos", owner, repo, "forks")
}

// GetUser serves users/{login}.
func (s *Source) GetUser(ctx context.Context, login string) (*domain.RawResource, error) {
	return s.get(ctx, 0, "users", login)
}

// GetRepository serves repos/{owner}/{repo}.
func (s *Source) GetRepository(ctx context.Context, owner, repo string) (*domain.RawResource, error) {
	return s.get(ctx, 0, "repos", owner, repo)
}

// ListCommits serves repos/{owner}/{repo}/commits.
func (s *Source) ListCommits(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error) {
	return s.get(ctx, page.Number, "repos", owner, repo, "commits")
}

// ListUserEvents serves users/{user}/events/public.
func (s *Source) ListUserEvents(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return s.get(ctx, page.Number, "users", user, "events", "public")
}

// ListReceivedEvents serves users/{user}/received_events/public.
func (s *Source) ListReceivedEvents(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return s.get(ctx, page.Number, "users", user, "received_events", "public")
}

// ListRepoEvents serves repos/{owner}/{repo}/events.
func (s *Source) ListRepoEvents(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error) {
	return s.get(ctx, page.Number, "repos", owner, repo, "events")
}

func (s *Source) get(ctx context.Context, page int, segments ...string) (*domain.RawResource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := fixtureKey(strings.Join(segments, "/"), page)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, key)

	if s.err != nil {
		return nil, s.err
	}
	raw, ok := s.fixtures[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrNotFound)
	}
	raw.Content = append([]byte(nil), raw.Content...)
	return &raw, nil
}

func fixtureKey(path string, page int) string {
	return path + "?page=" + strconv.Itoa(max(page, 1))
}
