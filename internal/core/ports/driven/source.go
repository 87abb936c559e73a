package driven

import (
	"context"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

// ResourceSource fetches raw records from the upstream hosting API.
// Every method requests exactly one page (or one object) and returns the
// response body untouched.
type ResourceSource interface {
	// ListUserRepos lists public repositories owned by user.
	ListUserRepos(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error)

	// ListStarred lists repositories starred by user.
	ListStarred(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error)

	// ListFollowers lists users following user.
	ListFollowers(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error)

	// ListFollowing lists users that user follows.
	ListFollowing(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error)

	// ListStargazers lists users who starred owner/repo.
	ListStargazers(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error)

	// ListForks lists forks of owner/repo.
	ListForks(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error)

	// GetUser fetches a single user profile.
	GetUser(ctx context.Context, login string) (*domain.RawResource, error)

	// GetRepository fetches a single repository.
	GetRepository(ctx context.Context, owner, repo string) (*domain.RawResource, error)

	// ListCommits lists commits on the default branch of owner/repo.
	ListCommits(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error)

	// ListUserEvents lists public events performed by user.
	ListUserEvents(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error)

	// ListReceivedEvents lists public events received by user.
	ListReceivedEvents(ctx context.Context, user string, page domain.Page) (*domain.RawResource, error)

	// ListRepoEvents lists events that happened in owner/repo.
	ListRepoEvents(ctx context.Context, owner, repo string, page domain.Page) (*domain.RawResource, error)
}
