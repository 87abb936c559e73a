package github

import (
	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

// Users decodes and projects a user list.
func (n *Normaliser) Users(raw *domain.RawResource) ([]domain.UserSummary, error) {
	users, err := decodeList[*gh.User](raw)
	if err != nil {
		return nil, err
	}
	return ProjectUsers(users), nil
}

// Forks decodes a fork list and projects the owner of each fork.
func (n *Normaliser) Forks(raw *domain.RawResource) ([]domain.UserSummary, error) {
	forks, err := decodeList[*gh.Repository](raw)
	if err != nil {
		return nil, err
	}
	return ProjectForks(forks), nil
}

// User decodes and projects a single user profile.
func (n *Normaliser) User(raw *domain.RawResource) (*domain.UserProfile, error) {
	user, err := decodeObject[gh.User](raw)
	if err != nil {
		return nil, err
	}
	profile := n.ProjectUser(user)
	return &profile, nil
}

// ProjectUsers maps users to list rows, one row per input.
func ProjectUsers(users []*gh.User) []domain.UserSummary {
	out := make([]domain.UserSummary, len(users))
	for i, u := range users {
		out[i] = userSummary(u)
	}
	return out
}

// ProjectForks maps forks to rows describing their owners.
func ProjectForks(forks []*gh.Repository) []domain.UserSummary {
	out := make([]domain.UserSummary, len(forks))
	for i, f := range forks {
		out[i] = userSummary(f.GetOwner())
	}
	return out
}

// ProjectUser maps a user to the profile view.
func (n *Normaliser) ProjectUser(u *gh.User) domain.UserProfile {
	return domain.UserProfile{
		Login:       u.GetLogin(),
		Avatar:      u.GetAvatarURL(),
		Type:        u.GetType(),
		Name:        u.GetName(),
		Company:     u.GetCompany(),
		Blog:        u.GetBlog(),
		Email:       u.GetEmail(),
		Bio:         u.GetBio(),
		PublicRepos: u.GetPublicRepos(),
		PublicGists: u.GetPublicGists(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		CreatedAt:   n.times.Format(u.GetCreatedAt().Time),
	}
}

func userSummary(u *gh.User) domain.UserSummary {
	return domain.UserSummary{
		Avatar: u.GetAvatarURL(),
		Login:  u.GetLogin(),
	}
}

func account(u *gh.User) domain.Account {
	return domain.Account{
		Login:  u.GetLogin(),
		Avatar: u.GetAvatarURL(),
	}
}
