package driving

import (
	"context"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

// FeedService fetches GitHub records and returns them as display views.
type FeedService interface {
	// UserRepos lists repositories owned by user.
	UserRepos(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.RepoSummary], error)

	// Starred lists repositories starred by user.
	Starred(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.RepoSummary], error)

	// Forks lists the owners of forks of owner/repo.
	Forks(ctx context.Context, owner, repo string, page domain.Page) (domain.Listing[domain.UserSummary], error)

	// Followers lists users following user.
	Followers(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.UserSummary], error)

	// Following lists users that user follows.
	Following(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.UserSummary], error)

	// Stargazers lists users who starred owner/repo.
	Stargazers(ctx context.Context, owner, repo string, page domain.Page) (domain.Listing[domain.UserSummary], error)

	// User fetches a user profile.
	User(ctx context.Context, login string) (*domain.UserProfile, error)

	// Repo fetches repository details.
	Repo(ctx context.Context, owner, repo string) (*domain.RepoDetail, error)

	// Commits lists recent commits of owner/repo.
	Commits(ctx context.Context, owner, repo string, page domain.Page) (domain.Listing[domain.CommitSummary], error)

	// UserEvents lists public events performed by user.
	UserEvents(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.ActivityEvent], error)

	// ReceivedEvents lists public events received by user.
	ReceivedEvents(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.ActivityEvent], error)

	// RepoEvents lists events of owner/repo.
	RepoEvents(ctx context.Context, owner, repo string, page domain.Page) (domain.Listing[domain.ActivityEvent], error)

	// Normalise projects an already fetched record of the given kind.
	// The result is the view slice or pointer matching the kind.
	Normalise(raw *domain.RawResource) (any, error)
}
