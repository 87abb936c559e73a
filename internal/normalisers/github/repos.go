package github

import (
	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/normalisers/format"
)

// TrendingRepository is a raw trending list entry. Trending data does not
// come from the REST API, so it has its own shape.
type TrendingRepository struct {
	Owner struct {
		Login string `json:"login"`
	} `json:"owner"`
	Name            string `json:"name"`
	Language        string `json:"language"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Increment       int    `json:"increment"`
}

// Repos decodes and projects a repository list.
func (n *Normaliser) Repos(raw *domain.RawResource) ([]domain.RepoSummary, error) {
	repos, err := decodeList[*gh.Repository](raw)
	if err != nil {
		return nil, err
	}
	return n.ProjectRepos(repos), nil
}

// Repo decodes and projects a single repository.
func (n *Normaliser) Repo(raw *domain.RawResource) (*domain.RepoDetail, error) {
	repo, err := decodeObject[gh.Repository](raw)
	if err != nil {
		return nil, err
	}
	detail := n.ProjectRepo(repo)
	return &detail, nil
}

// Trending decodes and projects a trending list.
func (n *Normaliser) Trending(raw *domain.RawResource) ([]domain.TrendingRepo, error) {
	repos, err := decodeList[*TrendingRepository](raw)
	if err != nil {
		return nil, err
	}
	return n.ProjectTrending(repos), nil
}

// ProjectRepos maps repositories to list rows, one row per input.
func (n *Normaliser) ProjectRepos(repos []*gh.Repository) []domain.RepoSummary {
	out := make([]domain.RepoSummary, len(repos))
	for i, r := range repos {
		out[i] = domain.RepoSummary{
			Owner:       account(r.GetOwner()),
			Name:        r.GetName(),
			Language:    r.GetLanguage(),
			Description: r.GetDescription(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			Color:       n.colors.Color(r.GetLanguage()),
		}
	}
	return out
}

// ProjectRepo maps a repository to its detail view.
func (n *Normaliser) ProjectRepo(r *gh.Repository) domain.RepoDetail {
	return domain.RepoDetail{
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Owner:       account(r.GetOwner()),
		Description: r.GetDescription(),
		CreatedAt:   n.times.Format(r.GetCreatedAt().Time),
		PushedAt:    n.times.Format(r.GetPushedAt().Time),
		Size:        format.Size(r.GetSize()),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		OpenIssues:  r.GetOpenIssuesCount(),
		Subscribers: r.GetSubscribersCount(),
		Language:    r.GetLanguage(),
	}
}

// ProjectTrending maps trending entries to list rows, one row per input.
func (n *Normaliser) ProjectTrending(repos []*TrendingRepository) []domain.TrendingRepo {
	out := make([]domain.TrendingRepo, len(repos))
	for i, r := range repos {
		if r == nil {
			r = &TrendingRepository{}
		}
		out[i] = domain.TrendingRepo{
			Owner:       domain.OwnerLogin{Login: r.Owner.Login},
			Name:        r.Name,
			Language:    r.Language,
			Description: r.Description,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			Increment:   r.Increment,
			Color:       n.colors.Color(r.Language),
		}
	}
	return out
}
