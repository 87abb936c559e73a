package driven

import (
	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

// Normaliser turns raw upstream records into presentation views.
// Implementations are pure: they perform no I/O and never mutate input.
// Sequence methods preserve the length and order of their input.
type Normaliser interface {
	// Repos projects a repository list.
	Repos(raw *domain.RawResource) ([]domain.RepoSummary, error)

	// Users projects a user list.
	Users(raw *domain.RawResource) ([]domain.UserSummary, error)

	// Forks projects the owners of a fork list.
	Forks(raw *domain.RawResource) ([]domain.UserSummary, error)

	// User projects a single user profile.
	User(raw *domain.RawResource) (*domain.UserProfile, error)

	// Repo projects a single repository.
	Repo(raw *domain.RawResource) (*domain.RepoDetail, error)

	// Trending projects a trending repository list.
	Trending(raw *domain.RawResource) ([]domain.TrendingRepo, error)

	// Commits projects a commit list.
	Commits(raw *domain.RawResource) ([]domain.CommitSummary, error)

	// Events normalises an activity event list.
	Events(raw *domain.RawResource) ([]domain.ActivityEvent, error)
}
