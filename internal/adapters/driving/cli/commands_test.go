package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hubfeed/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

const reposFixture = `[
	{"name": "hello", "owner": {"login": "octocat", "avatar_url": "https://a/o.png"},
	 "language": "Go", "description": "Hello world", "stargazers_count": 1500, "forks_count": 3}
]`

const usersFixture = `[{"login": "hubot", "avatar_url": "https://a/h.png"}]`

const eventsFixture = `[{
	"type": "WatchEvent",
	"actor": {"login": "hubot", "avatar_url": "https://a/h.png"},
	"repo": {"name": "octocat/hello"},
	"payload": {"action": "started"},
	"created_at": "2021-06-15T09:00:00Z"
}]`

func TestReposCmd(t *testing.T) {
	ta := setupApp(t)
	ta.source.Put("users/octocat/repos", 1, domain.KindRepos, reposFixture, 2)

	out, _, err := execute(t, "", "repos", "octocat")

	require.NoError(t, err)
	assert.Contains(t, out, "octocat/hello")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "Hello world")
	assert.Contains(t, out, "More results: --page 2")
}

func TestReposCmd_PageFlag(t *testing.T) {
	ta := setupApp(t)
	ta.source.Put("users/octocat/starred", 3, domain.KindRepos, reposFixture, 0)

	out, _, err := execute(t, "", "starred", "@octocat", "--page", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "octocat/hello")
	assert.NotContains(t, out, "More results")
	assert.Equal(t, []string{"users/octocat/starred?page=3"}, ta.source.Requests())
}

func TestReposCmd_JSON(t *testing.T) {
	ta := setupApp(t)
	ta.source.Put("users/octocat/repos", 1, domain.KindRepos, reposFixture, 2)

	out, _, err := execute(t, "", "repos", "octocat", "--json")

	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"owner": {"login": "octocat", "avatar_url": "https://a/o.png"},
		"name": "hello",
		"language": "Go",
		"description": "Hello world",
		"stargazers_count": 1500,
		"forks_count": 3
	}]`, out)
}

func TestUserListCmds(t *testing.T) {
	tests := []struct {
		name string
		path string
		args []string
	}{
		{"followers", "users/octocat/followers", []string{"followers", "octocat"}},
		{"following", "users/octocat/following", []string{"following", "octocat"}},
		{"stargazers", "repos/octocat/hello/stargazers", []string{"stargazers", "octocat/hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := setupApp(t)
			ta.source.Put(tt.path, 1, domain.KindUsers, usersFixture, 0)

			out, _, err := execute(t, "", tt.args...)

			require.NoError(t, err)
			assert.Contains(t, out, "hubot")
			assert.Contains(t, out, "https://a/h.png")
		})
	}
}

func TestForksCmd_ListsOwners(t *testing.T) {
	ta := setupApp(t)
	ta.source.Put("repos/octocat/hello/forks", 1, domain.KindForks, `[
		{"name": "hello", "owner": {"login": "alice", "avatar_url": "https://a/alice.png"}}
	]`, 0)

	out, _, err := execute(t, "", "forks", "https://github.com/octocat/hello.git")

	require.NoError(t, err)
	assert.Contains(t, out, "alice")
}

func TestUserCmd(t *testing.T) {
	ta := setupApp(t)
	ta.source.Put("users/octocat", 0, domain.KindUser, `{
		"login": "octocat", "name": "The Octocat", "type": "User",
		"public_repos": 8, "followers": 12000, "following": 9,
		"created_at": "2011-01-25T18:44:36Z"
	}`, 0)

	out, _, err := execute(t, "", "user", "octocat")

	require.NoError(t, err)
	assert.Contains(t, out, "The Octocat (octocat)")
	assert.Contains(t, out, "12,000")
	assert.Contains(t, out, "Jan 25, 2011")
}

func TestRepoCmd(t *testing.T) {
	ta := setupApp(t)
	ta.source.Put("repos/octocat/hello", 0, domain.KindRepo, `{
		"name": "hello", "full_name": "octocat/hello",
		"owner": {"login": "octocat", "avatar_url": "https://a/o.png"},
		"size": 1536, "stargazers_count": 80, "subscribers_count": 5
	}`, 0)

	out, _, err := execute(t, "", "repo", "octocat/hello")

	require.NoError(t, err)
	assert.Contains(t, out, "octocat/hello")
	assert.Contains(t, out, "1.50 MB")
}

func TestCommitsCmd(t *testing.T) {
	ta := setupApp(t)
	ta.source.Put("repos/octocat/hello/commits", 1, domain.KindCommits, `[{
		"sha": "6dcb09b5b57875f334f61aebed695e2e4193db5e",
		"author": {"login": "octocat", "avatar_url": "https://a/o.png"},
		"commit": {"message": "Fix all the bugs\n\nLong body", "comment_count": 2,
			"committer": {"name": "Monalisa", "date": "2021-06-14T12:00:00Z"}}
	}]`, 0)

	out, _, err := execute(t, "", "commits", "octocat/hello")

	require.NoError(t, err)
	assert.Contains(t, out, "6dcb09b")
	assert.Contains(t, out, "1 day ago")
	assert.Contains(t, out, "Fix all the bugs")
	assert.NotContains(t, out, "Long body")
}

func TestEventsCmd(t *testing.T) {
	t.Run("performed", func(t *testing.T) {
		ta := setupApp(t)
		ta.source.Put("users/hubot/events/public", 1, domain.KindEvents, eventsFixture, 0)

		out, _, err := execute(t, "", "events", "hubot")

		require.NoError(t, err)
		assert.Contains(t, out, "about 3 hours")
		assert.Contains(t, out, "starred")
		assert.Contains(t, out, "octocat/hello")
	})

	t.Run("received", func(t *testing.T) {
		ta := setupApp(t)
		ta.source.Put("users/hubot/received_events/public", 1, domain.KindEvents, eventsFixture, 0)

		_, _, err := execute(t, "", "events", "hubot", "--received")

		require.NoError(t, err)
		assert.Equal(t, []string{"users/hubot/received_events/public?page=1"}, ta.source.Requests())
	})

	t.Run("repository", func(t *testing.T) {
		ta := setupApp(t)
		ta.source.Put("repos/octocat/hello/events", 1, domain.KindEvents, eventsFixture, 0)

		out, _, err := execute(t, "", "repo-events", "octocat/hello", "--json")

		require.NoError(t, err)
		assert.JSONEq(t, `[{
			"type": "WatchEvent",
			"actor": {"login": "hubot", "avatar_url": "https://a/h.png"},
			"repo": {"name": "octocat/hello"},
			"payload": {"action": "Started"},
			"created_at": "about 3 hours"
		}]`, out)
	})
}

func TestListCmd_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		setupApp(t)

		_, _, err := execute(t, "", "repos", "nobody")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "repos failed")
	})

	t.Run("source failure", func(t *testing.T) {
		ta := setupApp(t)
		ta.source.FailWith(domain.ErrRateLimited)

		_, _, err := execute(t, "", "commits", "octocat/hello")

		assert.ErrorIs(t, err, domain.ErrRateLimited)
	})

	t.Run("bad repository argument", func(t *testing.T) {
		ta := setupApp(t)

		_, _, err := execute(t, "", "repo", "octocat")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, ta.source.Requests())
	})

	t.Run("missing argument", func(t *testing.T) {
		setupApp(t)

		_, _, err := execute(t, "", "user")

		assert.Error(t, err)
	})
}

func TestNormaliseCmd(t *testing.T) {
	t.Run("from stdin", func(t *testing.T) {
		setupApp(t)

		out, _, err := execute(t, usersFixture, "normalise", "users")

		require.NoError(t, err)
		assert.Contains(t, out, "hubot")
	})

	t.Run("from file as json", func(t *testing.T) {
		setupApp(t)
		path := filepath.Join(t.TempDir(), "trending.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{
			"owner": {"login": "octocat"}, "name": "hello", "language": "Go",
			"stargazers_count": 10, "forks_count": 1, "increment": 4
		}]`), 0o644))

		out, _, err := execute(t, "", "normalize", "trending", "--file", path, "--json")

		require.NoError(t, err)
		assert.JSONEq(t, `[{
			"owner": {"login": "octocat"}, "name": "hello", "language": "Go",
			"description": "", "stargazers_count": 10, "forks_count": 1, "increment": 4
		}]`, out)
	})

	t.Run("unknown kind", func(t *testing.T) {
		setupApp(t)

		_, _, err := execute(t, "[]", "normalise", "gists")

		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})

	t.Run("malformed input", func(t *testing.T) {
		setupApp(t)

		_, _, err := execute(t, `{"not": "a list"}`, "normalise", "repos")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "normalise repos")
	})

	t.Run("missing file", func(t *testing.T) {
		setupApp(t)

		_, _, err := execute(t, "", "normalise", "repos", "--file", filepath.Join(t.TempDir(), "nope.json"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("watch requires file", func(t *testing.T) {
		setupApp(t)

		_, _, err := execute(t, "", "normalise", "repos", "--watch")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--watch requires --file")
	})
}

func TestRenderFile(t *testing.T) {
	setupApp(t)
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(usersFixture), 0o644))

	msg := renderFile(app, domain.KindUsers, path, false)

	require.NoError(t, msg.Err)
	assert.Contains(t, msg.Content, "hubot")
	assert.False(t, msg.At.IsZero())

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	msg = renderFile(app, domain.KindUsers, path, false)

	assert.Error(t, msg.Err)
	assert.Empty(t, msg.Content)
}

func TestStreamRenders(t *testing.T) {
	updates := make(chan messages.Rendered, 3)
	updates <- messages.Rendered{Content: "first\n"}
	updates <- messages.Rendered{Err: errors.New("bad json")}
	updates <- messages.Rendered{Content: "second\n"}
	close(updates)

	var out, errOut bytes.Buffer
	err := streamRenders(context.Background(), &out, &errOut, updates)

	require.NoError(t, err)
	assert.Equal(t, "first\n\nsecond\n", out.String())
	assert.Contains(t, errOut.String(), "bad json")
}

func TestStreamRenders_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- streamRenders(ctx, &bytes.Buffer{}, &bytes.Buffer{}, make(chan messages.Rendered)) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("streamRenders did not return")
	}
}

func TestConfigCmd(t *testing.T) {
	ta := setupApp(t)

	out, _, err := execute(t, "", "config", "set", "display.per_page", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Set display.per_page")
	assert.Equal(t, 25, ta.store.GetInt("display.per_page"))

	out, _, err = execute(t, "", "config", "get", "display.per_page")
	require.NoError(t, err)
	assert.Equal(t, "25\n", out)

	_, _, err = execute(t, "ghp_1234567890abcdef\n", "config", "set", "github.token")
	require.NoError(t, err)
	assert.Equal(t, "ghp_1234567890abcdef", ta.store.GetString("github.token"))

	out, _, err = execute(t, "", "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "display.per_page")
	assert.Contains(t, out, "ghp_...cdef")
	assert.NotContains(t, out, "ghp_1234567890abcdef")

	out, _, err = execute(t, "", "config", "list", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"display.per_page": "25", "github.token": "ghp_...cdef"}`, out)

	_, _, err = execute(t, "", "config", "unset", "github.token")
	require.NoError(t, err)

	_, _, err = execute(t, "", "config", "get", "github.token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not set")

	out, _, err = execute(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", out)
}

func TestConfigCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"config", "set", "github.colour", "x"}},
		{"invalid per page", []string{"config", "set", "display.per_page", "500"}},
		{"missing value", []string{"config", "set", "display.per_page"}},
		{"invalid colour", []string{"config", "set", "languages.Go", "blue"}},
		{"get unknown key", []string{"config", "get", "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupApp(t)

			_, _, err := execute(t, "", tt.args...)

			assert.Error(t, err)
		})
	}
}

func TestConfigCmd_EmptyList(t *testing.T) {
	setupApp(t)

	out, _, err := execute(t, "", "config")

	require.NoError(t, err)
	assert.Contains(t, out, "No configuration set.")
}

func TestRateLimitCmd(t *testing.T) {
	ta := setupApp(t)
	ta.rateLimits.status = domain.RateStatus{Limit: 5000, Remaining: 4321, Reset: testNow}

	out, _, err := execute(t, "", "rate-limit")
	require.NoError(t, err)
	assert.Contains(t, out, "4,321 of 5,000")

	out, _, err = execute(t, "", "rate-limit", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"limit": 5000, "remaining": 4321, "reset": "2021-06-15T12:00:00Z"}`, out)

	ta.rateLimits.err = domain.ErrAuthInvalid
	_, _, err = execute(t, "", "rate-limit")
	assert.ErrorIs(t, err, domain.ErrAuthInvalid)
}
