package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

func TestParseRepoArg(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{name: "owner/repo", input: "octocat/hello", wantOwner: "octocat", wantRepo: "hello"},
		{name: "https url", input: "https://github.com/octocat/hello", wantOwner: "octocat", wantRepo: "hello"},
		{name: "url with .git", input: "https://github.com/octocat/hello.git", wantOwner: "octocat", wantRepo: "hello"},
		{name: "bare host", input: "github.com/octocat/hello/", wantOwner: "octocat", wantRepo: "hello"},
		{name: "surrounding spaces", input: "  octocat/hello ", wantOwner: "octocat", wantRepo: "hello"},
		{name: "missing repo", input: "octocat", wantErr: true},
		{name: "empty owner", input: "/hello", wantErr: true},
		{name: "too many parts", input: "octocat/hello/tree", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := parseRepoArg(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestParseLoginArg(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "octocat", want: "octocat"},
		{input: "@octocat", want: "octocat"},
		{input: " hubot ", want: "hubot"},
		{input: "octo cat", wantErr: true},
		{input: "octocat/hello", wantErr: true},
		{input: "@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLoginArg(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddPageFlags(t *testing.T) {
	for _, cmd := range []*cobra.Command{reposCmd, commitsCmd, eventsCmd, repoEventsCmd} {
		t.Run(cmd.Name(), func(t *testing.T) {
			page := cmd.Flags().Lookup("page")
			perPage := cmd.Flags().Lookup("per-page")

			require.NotNil(t, page)
			require.NotNil(t, perPage)
			assert.Equal(t, "1", page.DefValue)
			assert.Equal(t, "0", perPage.DefValue)
		})
	}
}
