package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.ResourceSource = (*Client)(nil)

// ListUserRepos lists public repositories owned by user, most recently
// updated first.
func (c *Client) ListUserRepos(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return c.list(ctx, domain.KindRepos, page, []string{"users", user, "repos"},
		repoListOptions{Sort: "updated"})
}

// ListStarred lists repositories starred by user.
func (c *Client) ListStarred(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return c.list(ctx, domain.KindRepos, page, []string{"users", user, "starred"})
}

// ListFollowers lists users following user.
func (c *Client) ListFollowers(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return c.list(ctx, domain.KindUsers, page, []string{"users", user, "followers"})
}

// ListFollowing lists users that user follows.
func (c *Client) ListFollowing(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return c.list(ctx, domain.KindUsers, page, []string{"users", user, "following"})
}

// ListStargazers lists users who starred owner/repo.
func (c *Client) ListStargazers(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error) {
	return c.list(ctx, domain.KindStargazers, page, []string{"repos", owner, repo, "stargazers"})
}

// ListForks lists forks of owner/repo, newest first.
func (c *Client) ListForks(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error) {
	return c.list(ctx, domain.KindForks, page, []string{"repos", owner, repo, "forks"},
		forkListOptions{Sort: "newest"})
}

// GetUser fetches a single user profile.
func (c *Client) GetUser(ctx context.Context, login string) (*domain.RawResource, error) {
	path, err := joinPath("users", login)
	if err != nil {
		return nil, err
	}
	return c.fetch(ctx, domain.KindUser, path)
}

// GetRepository fetches a single repository.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*domain.RawResource, error) {
	path, err := joinPath("repos", owner, repo)
	if err != nil {
		return nil, err
	}
	return c.fetch(ctx, domain.KindRepo, path)
}

// ListCommits lists commits on the default branch of owner/repo.
func (c *Client) ListCommits(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error) {
	return c.list(ctx, domain.KindCommits, page, []string{"repos", owner, repo, "commits"})
}

// ListUserEvents lists public events performed by user.
func (c *Client) ListUserEvents(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return c.list(ctx, domain.KindEvents, page, []string{"users", user, "events", "public"})
}

// ListReceivedEvents lists public events received by user.
func (c *Client) ListReceivedEvents(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error) {
	return c.list(ctx, domain.KindEvents, page, []string{"users", user, "received_events", "public"})
}

// ListRepoEvents lists events that happened in owner/repo.
func (c *Client) ListRepoEvents(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error) {
	return c.list(ctx, domain.KindEvents, page, []string{"repos", owner, repo, "events"})
}

// list builds a paginated path from segments and fetches it.
func (c *Client) list(ctx context.Context, kind domain.ResourceKind, page domain.Page, segments []string, extra ...any) (*domain.RawResource, error) {
	path, err := joinPath(segments...)
	if err != nil {
		return nil, err
	}
	path, err = c.listPath(path, page, extra...)
	if err != nil {
		return nil, err
	}
	return c.fetch(ctx, kind, path)
}

// joinPath escapes each segment into a relative API path. Empty segments
// are rejected so a missing login never widens the request.
func joinPath(segments ...string) (string, error) {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", fmt.Errorf("%w: empty path segment %d", ErrInvalidArgument, i)
		}
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/"), nil
}
