package github

import (
	"strings"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

func TestNormaliser_Commits(t *testing.T) {
	n := newTestNormaliser()
	raw := rawOf(domain.KindCommits, `[
		{
			"sha": "6dcb09b5b57875f334f61aebed695e2e4193db5e",
			"author": {"login": "octocat", "avatar_url": "https://a/octocat.png"},
			"commit": {
				"message": "Fix all the bugs",
				"comment_count": 2,
				"author": {"name": "Monalisa Octocat", "date": "2021-06-14T12:00:00Z"},
				"committer": {"name": "Monalisa Octocat", "date": "2021-06-14T12:00:00Z"}
			}
		},
		{
			"sha": "abcdef1234567",
			"author": null,
			"commit": {
				"message": "Initial import",
				"comment_count": 0,
				"author": {"name": "Jane", "email": "jane@example.com", "date": "2021-06-10T12:00:00Z"},
				"committer": {"name": "Jane", "date": "2021-06-10T12:00:00Z"}
			}
		}
	]`)

	commits, err := n.Commits(raw)

	require.NoError(t, err)
	require.Len(t, commits, 2)

	assert.Equal(t, domain.CommitSummary{
		SHA:    "6dcb09b",
		Author: domain.Account{Login: "octocat", Avatar: "https://a/octocat.png"},
		Commit: domain.CommitInfo{
			Message:      "Fix all the bugs",
			CommentCount: 2,
			Date:         "1 day ago",
		},
	}, commits[0])

	fallback := commits[1]
	assert.Equal(t, "abcdef1", fallback.SHA)
	assert.Equal(t, "Jane", fallback.Author.Login)
	assert.Equal(t, "https://example.com/default.png", fallback.Author.Avatar)
	assert.True(t, strings.HasSuffix(fallback.Commit.Date, " ago"), "date %q", fallback.Commit.Date)
}

func TestNormaliser_Commits_UsesCommitterDate(t *testing.T) {
	n := newTestNormaliser()
	authored := gh.Timestamp{Time: testNow.AddDate(-1, 0, 0)}
	committed := gh.Timestamp{Time: testNow.AddDate(0, 0, -3)}

	out := n.ProjectCommits([]*gh.RepositoryCommit{{
		SHA: gh.Ptr("0123456789"),
		Commit: &gh.Commit{
			Author:    &gh.CommitAuthor{Name: gh.Ptr("Jane"), Date: &authored},
			Committer: &gh.CommitAuthor{Name: gh.Ptr("Bot"), Date: &committed},
		},
	}})

	require.Len(t, out, 1)
	assert.Equal(t, "3 days ago", out[0].Commit.Date)
}

func TestNormaliser_ResolveCommitAuthor(t *testing.T) {
	n := New(Config{})

	t.Run("linked account wins", func(t *testing.T) {
		c := &gh.RepositoryCommit{
			Author: &gh.User{Login: gh.Ptr("octocat"), AvatarURL: gh.Ptr("https://a/o.png")},
			Commit: &gh.Commit{Author: &gh.CommitAuthor{Name: gh.Ptr("Someone Else")}},
		}

		assert.Equal(t, domain.Account{Login: "octocat", Avatar: "https://a/o.png"}, n.resolveCommitAuthor(c))
	})

	t.Run("missing account uses git author and default avatar", func(t *testing.T) {
		c := &gh.RepositoryCommit{
			Commit: &gh.Commit{Author: &gh.CommitAuthor{Name: gh.Ptr("Jane")}},
		}

		assert.Equal(t, domain.Account{Login: "Jane", Avatar: domain.DefaultAvatarURL}, n.resolveCommitAuthor(c))
	})

	t.Run("missing commit data degrades to empty login", func(t *testing.T) {
		got := n.resolveCommitAuthor(&gh.RepositoryCommit{})

		assert.Equal(t, "", got.Login)
		assert.Equal(t, domain.DefaultAvatarURL, got.Avatar)
	})
}
