package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driven"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driving"
	"github.com/custodia-labs/hubfeed/internal/logger"
)

// Ensure FeedService implements the interface.
var _ driving.FeedService = (*FeedService)(nil)

// FeedService fetches raw records from a source and normalises them.
type FeedService struct {
	source     driven.ResourceSource
	normaliser driven.Normaliser
}

// NewFeedService creates a new feed service.
func NewFeedService(source driven.ResourceSource, normaliser driven.Normaliser) *FeedService {
	return &FeedService{
		source:     source,
		normaliser: normaliser,
	}
}

// UserRepos lists repositories owned by user.
func (s *FeedService) UserRepos(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.RepoSummary], error) {
	raw, err := s.source.ListUserRepos(ctx, user, page)
	return listing(raw, err, s.normaliser.Repos)
}

// Starred lists repositories starred by user.
func (s *FeedService) Starred(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.RepoSummary], error) {
	raw, err := s.source.ListStarred(ctx, user, page)
	return listing(raw, err, s.normaliser.Repos)
}

// Forks lists the owners of forks of owner/repo.
func (s *FeedService) Forks(ctx context.Context, owner, repo string, page domain.Page) (domain.Listing[domain.UserSummary], error) {
	raw, err := s.source.ListForks(ctx, owner, repo, page)
	return listing(raw, err, s.normaliser.Forks)
}

// Followers lists users following user.
func (s *FeedService) Followers(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.UserSummary], error) {
	raw, err := s.source.ListFollowers(ctx, user, page)
	return listing(raw, err, s.normaliser.Users)
}

// Following lists users that user follows.
func (s *FeedService) Following(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.UserSummary], error) {
	raw, err := s.source.ListFollowing(ctx, user, page)
	return listing(raw, err, s.normaliser.Users)
}

// Stargazers lists users who starred owner/repo.
func (s *FeedService) Stargazers(ctx context.Context, owner, repo string, page domain.Page) (domain.Listing[domain.UserSummary], error) {
	raw, err := s.source.ListStargazers(ctx, owner, repo, page)
	return listing(raw, err, s.normaliser.Users)
}

// User fetches a user profile.
func (s *FeedService) User(ctx context.Context, login string) (*domain.UserProfile, error) {
	raw, err := s.source.GetUser(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", login, err)
	}
	return s.normaliser.User(raw)
}

// Repo fetches repository details.
func (s *FeedService) Repo(ctx context.Context, owner, repo string) (*domain.RepoDetail, error) {
	raw, err := s.source.GetRepository(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("fetch repository %s/%s: %w", owner, repo, err)
	}
	return s.normaliser.Repo(raw)
}

// Commits lists recent commits of owner/repo.
func (s *FeedService) Commits(ctx context.Context, owner, repo string, page domain.Page) (domain.Listing[domain.CommitSummary], error) {
	raw, err := s.source.ListCommits(ctx, owner, repo, page)
	return listing(raw, err, s.normaliser.Commits)
}

// UserEvents lists public events performed by user.
func (s *FeedService) UserEvents(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.ActivityEvent], error) {
	raw, err := s.source.ListUserEvents(ctx, user, page)
	return listing(raw, err, s.normaliser.Events)
}

// ReceivedEvents lists public events received by user.
func (s *FeedService) ReceivedEvents(ctx context.Context, user string, page domain.Page) (domain.Listing[domain.ActivityEvent], error) {
	raw, err := s.source.ListReceivedEvents(ctx, user, page)
	return listing(raw, err, s.normaliser.Events)
}

// RepoEvents lists events of owner/repo.
func (s *FeedService) RepoEvents(ctx context.Context, owner, repo string, page domain.Page) (domain.Listing[domain.ActivityEvent], error) {
	raw, err := s.source.ListRepoEvents(ctx, owner, repo, page)
	return listing(raw, err, s.normaliser.Events)
}

// Normalise projects an already fetched record of the given kind.
func (s *FeedService) Normalise(raw *domain.RawResource) (any, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	switch raw.Kind {
	case domain.KindRepos:
		return s.normaliser.Repos(raw)
	case domain.KindUsers, domain.KindStargazers:
		return s.normaliser.Users(raw)
	case domain.KindForks:
		return s.normaliser.Forks(raw)
	case domain.KindUser:
		return s.normaliser.User(raw)
	case domain.KindRepo:
		return s.normaliser.Repo(raw)
	case domain.KindTrending:
		return s.normaliser.Trending(raw)
	case domain.KindCommits:
		return s.normaliser.Commits(raw)
	case domain.KindEvents:
		return s.normaliser.Events(raw)
	default:
		return nil, fmt.Errorf("%w: resource kind %q", domain.ErrUnsupportedType, raw.Kind)
	}
}

// listing wraps a fetched page and its projection into a Listing.
func listing[T any](raw *domain.RawResource, fetchErr error, project func(*domain.RawResource) ([]T, error)) (domain.Listing[T], error) {
	if fetchErr != nil {
		return domain.Listing[T]{}, fmt.Errorf("fetch: %w", fetchErr)
	}

	items, err := project(raw)
	if err != nil {
		return domain.Listing[T]{}, err
	}

	logger.Debug("normalised %d %s (next page %d)", len(items), raw.Kind, raw.NextPage)
	return domain.Listing[T]{Items: items, NextPage: raw.NextPage}, nil
}
