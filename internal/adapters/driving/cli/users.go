package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

var userCmd = &cobra.Command{
	Use:   "user <login>",
	Short: "Show a user profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUser,
}

var followersCmd = &cobra.Command{
	Use:   "followers <login>",
	Short: "List a user's followers",
	Args:  cobra.ExactArgs(1),
	RunE:  runFollowers,
}

var followingCmd = &cobra.Command{
	Use:   "following <login>",
	Short: "List users a user follows",
	Args:  cobra.ExactArgs(1),
	RunE:  runFollowing,
}

var (
	followersPage *domain.Page
	followingPage *domain.Page
)

func init() {
	followersPage = addPageFlags(followersCmd)
	followingPage = addPageFlags(followingCmd)
	rootCmd.AddCommand(userCmd, followersCmd, followingCmd)
}

func runUser(cmd *cobra.Command, args []string) error {
	login, err := parseLoginArg(args[0])
	if err != nil {
		return err
	}
	svc, err := ensureApp()
	if err != nil {
		return err
	}

	profile, err := svc.feed.User(cmd.Context(), login)
	if err != nil {
		return fmt.Errorf("user failed: %w", err)
	}
	return newRenderer(cmd).view(profile)
}

func runFollowers(cmd *cobra.Command, args []string) error {
	login, err := parseLoginArg(args[0])
	if err != nil {
		return err
	}
	return runListing(cmd, followersPage,
		func(ctx context.Context, svc *appServices, page domain.Page) (domain.Listing[domain.UserSummary], error) {
			return svc.feed.Followers(ctx, login, page)
		},
		(*renderer).users)
}

func runFollowing(cmd *cobra.Command, args []string) error {
	login, err := parseLoginArg(args[0])
	if err != nil {
		return err
	}
	return runListing(cmd, followingPage,
		func(ctx context.Context, svc *appServices, page domain.Page) (domain.Listing[domain.UserSummary], error) {
			return svc.feed.Following(ctx, login, page)
		},
		(*renderer).users)
}
