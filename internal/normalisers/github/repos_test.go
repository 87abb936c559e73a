package github

import (
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

var testNow = time.Date(2021, time.June, 15, 12, 0, 0, 0, time.UTC)

// mapColors is a fixed colour table for tests.
type mapColors map[string]string

func (m mapColors) Color(language string) string { return m[language] }

func newTestNormaliser() *Normaliser {
	return New(Config{
		Colors:        mapColors{"Go": "#00ADD8", "Rust": "#dea584"},
		DefaultAvatar: "https://example.com/default.png",
		Now:           func() time.Time { return testNow },
	})
}

func rawOf(kind domain.ResourceKind, content string) *domain.RawResource {
	return &domain.RawResource{Kind: kind, Content: []byte(content)}
}

func TestNew_Defaults(t *testing.T) {
	n := New(Config{})

	require.NotNil(t, n)
	assert.Equal(t, domain.DefaultAvatarURL, n.defaultAvatar)
	assert.Equal(t, "", n.colors.Color("Go"))
}

func TestNewFromSettings(t *testing.T) {
	settings := domain.DisplaySettings{DefaultAvatar: "https://example.com/a.png", PerPage: 10}

	n := NewFromSettings(settings, mapColors{"Go": "#00ADD8"})

	assert.Equal(t, "https://example.com/a.png", n.defaultAvatar)
	assert.Equal(t, "#00ADD8", n.colors.Color("Go"))
}

func TestNormaliser_Repos(t *testing.T) {
	n := newTestNormaliser()
	raw := rawOf(domain.KindRepos, `[
		{
			"name": "hello",
			"owner": {"login": "octocat", "avatar_url": "https://a/octocat.png"},
			"language": "Go",
			"description": "Hello world",
			"stargazers_count": 42,
			"forks_count": 7,
			"watchers_count": 42
		},
		{
			"name": "notes",
			"owner": {"login": "octocat", "avatar_url": "https://a/octocat.png"},
			"language": null,
			"description": null,
			"stargazers_count": 0,
			"forks_count": 0
		}
	]`)

	repos, err := n.Repos(raw)

	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, domain.RepoSummary{
		Owner:       domain.Account{Login: "octocat", Avatar: "https://a/octocat.png"},
		Name:        "hello",
		Language:    "Go",
		Description: "Hello world",
		Stars:       42,
		Forks:       7,
		Color:       "#00ADD8",
	}, repos[0])
	assert.Equal(t, "notes", repos[1].Name)
	assert.Empty(t, repos[1].Language)
	assert.Empty(t, repos[1].Color)
}

func TestNormaliser_Repos_PreservesOrderAndLength(t *testing.T) {
	n := newTestNormaliser()
	input := []*gh.Repository{
		{Name: gh.Ptr("c")},
		{Name: gh.Ptr("a")},
		nil,
		{Name: gh.Ptr("b")},
	}

	out := n.ProjectRepos(input)

	require.Len(t, out, len(input))
	assert.Equal(t, "c", out[0].Name)
	assert.Equal(t, "a", out[1].Name)
	assert.Equal(t, domain.RepoSummary{}, out[2])
	assert.Equal(t, "b", out[3].Name)
}

func TestNormaliser_Repos_DoesNotMutateInput(t *testing.T) {
	n := newTestNormaliser()
	repo := &gh.Repository{
		Name:     gh.Ptr("hello"),
		Language: gh.Ptr("Go"),
		Owner:    &gh.User{Login: gh.Ptr("octocat")},
	}

	out := n.ProjectRepos([]*gh.Repository{repo})
	out[0].Owner.Login = "changed"

	assert.Equal(t, "octocat", repo.GetOwner().GetLogin())
	assert.Equal(t, "Go", repo.GetLanguage())
}

func TestNormaliser_Repos_Errors(t *testing.T) {
	n := newTestNormaliser()

	t.Run("nil resource", func(t *testing.T) {
		_, err := n.Repos(nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := n.Repos(rawOf(domain.KindRepos, `{"not": "an array"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode repos")
	})
}

func TestNormaliser_Repo(t *testing.T) {
	n := newTestNormaliser()
	raw := rawOf(domain.KindRepo, `{
		"name": "hello",
		"full_name": "octocat/hello",
		"owner": {"login": "octocat", "avatar_url": "https://a/octocat.png"},
		"description": "Hello world",
		"created_at": "2011-01-26T19:01:12Z",
		"pushed_at": "2021-06-10T12:00:00Z",
		"size": 2048,
		"stargazers_count": 80,
		"forks_count": 9,
		"open_issues_count": 3,
		"subscribers_count": 12,
		"language": "Go"
	}`)

	repo, err := n.Repo(raw)

	require.NoError(t, err)
	assert.Equal(t, &domain.RepoDetail{
		Name:        "hello",
		FullName:    "octocat/hello",
		Owner:       domain.Account{Login: "octocat", Avatar: "https://a/octocat.png"},
		Description: "Hello world",
		CreatedAt:   "Jan 26, 2011",
		PushedAt:    "5 days ago",
		Size:        "2.00 MB",
		Stars:       80,
		Forks:       9,
		OpenIssues:  3,
		Subscribers: 12,
		Language:    "Go",
	}, repo)
}

func TestNormaliser_Repo_SmallSize(t *testing.T) {
	n := newTestNormaliser()

	detail := n.ProjectRepo(&gh.Repository{Size: gh.Ptr(512)})

	assert.Equal(t, "512.00 KB", detail.Size)
	assert.Empty(t, detail.CreatedAt)
	assert.Empty(t, detail.PushedAt)
}

func TestNormaliser_Trending(t *testing.T) {
	n := newTestNormaliser()
	raw := rawOf(domain.KindTrending, `[
		{
			"owner": {"login": "rustacean", "avatar_url": "https://a/r.png"},
			"name": "fast",
			"language": "Rust",
			"description": "Very fast",
			"stargazers_count": 1200,
			"forks_count": 30,
			"increment": 150
		},
		{
			"owner": {"login": "someone"},
			"name": "misc",
			"language": "Brainfuck",
			"description": null,
			"stargazers_count": 5,
			"forks_count": 1,
			"increment": 2
		}
	]`)

	repos, err := n.Trending(raw)

	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, domain.TrendingRepo{
		Owner:       domain.OwnerLogin{Login: "rustacean"},
		Name:        "fast",
		Language:    "Rust",
		Description: "Very fast",
		Stars:       1200,
		Forks:       30,
		Increment:   150,
		Color:       "#dea584",
	}, repos[0])
	assert.Equal(t, "someone", repos[1].Owner.Login)
	assert.Empty(t, repos[1].Color)
}

func TestShortSHA(t *testing.T) {
	assert.Equal(t, "abcdef1", shortSHA("abcdef1234567"))
	assert.Equal(t, "abc", shortSHA("abc"))
	assert.Equal(t, "", shortSHA(""))
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "main", lastSegment("refs/heads/main"))
	assert.Equal(t, "v1.0", lastSegment("refs/tags/v1.0"))
	assert.Equal(t, "main", lastSegment("main"))
	assert.Equal(t, "", lastSegment("refs/heads/"))
}
