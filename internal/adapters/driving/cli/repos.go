package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

var reposCmd = &cobra.Command{
	Use:   "repos <user>",
	Short: "List a user's repositories",
	Long:  `Lists public repositories owned by a user, most recently updated first.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRepos,
}

var starredCmd = &cobra.Command{
	Use:   "starred <user>",
	Short: "List repositories a user has starred",
	Args:  cobra.ExactArgs(1),
	RunE:  runStarred,
}

var (
	reposPage   *domain.Page
	starredPage *domain.Page
)

func init() {
	reposPage = addPageFlags(reposCmd)
	starredPage = addPageFlags(starredCmd)
	rootCmd.AddCommand(reposCmd, starredCmd)
}

func runRepos(cmd *cobra.Command, args []string) error {
	login, err := parseLoginArg(args[0])
	if err != nil {
		return err
	}
	return runListing(cmd, reposPage,
		func(ctx context.Context, svc *appServices, page domain.Page) (domain.Listing[domain.RepoSummary], error) {
			return svc.feed.UserRepos(ctx, login, page)
		},
		(*renderer).repos)
}

func runStarred(cmd *cobra.Command, args []string) error {
	login, err := parseLoginArg(args[0])
	if err != nil {
		return err
	}
	return runListing(cmd, starredPage,
		func(ctx context.Context, svc *appServices, page domain.Page) (domain.Listing[domain.RepoSummary], error) {
			return svc.feed.Starred(ctx, login, page)
		},
		(*renderer).repos)
}
