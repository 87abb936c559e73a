package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

var repoCmd = &cobra.Command{
	Use:   "repo <owner/repo>",
	Short: "Show repository details",
	Args:  cobra.ExactArgs(1),
	RunE:  runRepo,
}

var commitsCmd = &cobra.Command{
	Use:   "commits <owner/repo>",
	Short: "List recent commits on the default branch",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommits,
}

var forksCmd = &cobra.Command{
	Use:   "forks <owner/repo>",
	Short: "List the owners of a repository's forks",
	Args:  cobra.ExactArgs(1),
	RunE:  runForks,
}

var stargazersCmd = &cobra.Command{
	Use:   "stargazers <owner/repo>",
	Short: "List users who starred a repository",
	Args:  cobra.ExactArgs(1),
	RunE:  runStargazers,
}

var (
	commitsPage    *domain.Page
	forksPage      *domain.Page
	stargazersPage *domain.Page
)

func init() {
	commitsPage = addPageFlags(commitsCmd)
	forksPage = addPageFlags(forksCmd)
	stargazersPage = addPageFlags(stargazersCmd)
	rootCmd.AddCommand(repoCmd, commitsCmd, forksCmd, stargazersCmd)
}

func runRepo(cmd *cobra.Command, args []string) error {
	owner, name, err := parseRepoArg(args[0])
	if err != nil {
		return err
	}
	svc, err := ensureApp()
	if err != nil {
		return err
	}

	detail, err := svc.feed.Repo(cmd.Context(), owner, name)
	if err != nil {
		return fmt.Errorf("repo failed: %w", err)
	}
	return newRenderer(cmd).view(detail)
}

func runCommits(cmd *cobra.Command, args []string) error {
	owner, name, err := parseRepoArg(args[0])
	if err != nil {
		return err
	}
	return runListing(cmd, commitsPage,
		func(ctx context.Context, svc *appServices, page domain.Page) (domain.Listing[domain.CommitSummary], error) {
			return svc.feed.Commits(ctx, owner, name, page)
		},
		(*renderer).commits)
}

func runForks(cmd *cobra.Command, args []string) error {
	owner, name, err := parseRepoArg(args[0])
	if err != nil {
		return err
	}
	return runListing(cmd, forksPage,
		func(ctx context.Context, svc *appServices, page domain.Page) (domain.Listing[domain.UserSummary], error) {
			return svc.feed.Forks(ctx, owner, name, page)
		},
		(*renderer).users)
}

func runStargazers(cmd *cobra.Command, args []string) error {
	owner, name, err := parseRepoArg(args[0])
	if err != nil {
		return err
	}
	return runListing(cmd, stargazersPage,
		func(ctx context.Context, svc *appServices, page domain.Page) (domain.Listing[domain.UserSummary], error) {
			return svc.feed.Stargazers(ctx, owner, name, page)
		},
		(*renderer).users)
}
