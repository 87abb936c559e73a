package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

var (
	eventsReceived bool
	eventsPage     *domain.Page
	repoEventsPage *domain.Page
)

var eventsCmd = &cobra.Command{
	Use:   "events <login>",
	Short: "Show a user's public activity",
	Long: `Shows public events performed by a user. With --received, shows the
events of users and repositories the user follows instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runEvents,
}

var repoEventsCmd = &cobra.Command{
	Use:   "repo-events <owner/repo>",
	Short: "Show activity in a repository",
	Args:  cobra.ExactArgs(1),
	RunE:  runRepoEvents,
}

func init() {
	eventsPage = addPageFlags(eventsCmd)
	eventsCmd.Flags().BoolVar(&eventsReceived, "received", false, "show events received by the user")
	repoEventsPage = addPageFlags(repoEventsCmd)
	rootCmd.AddCommand(eventsCmd, repoEventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	login, err := parseLoginArg(args[0])
	if err != nil {
		return err
	}
	return runListing(cmd, eventsPage,
		func(ctx context.Context, svc *appServices, page domain.Page) (domain.Listing[domain.ActivityEvent], error) {
			if eventsReceived {
				return svc.feed.ReceivedEvents(ctx, login, page)
			}
			return svc.feed.UserEvents(ctx, login, page)
		},
		(*renderer).events)
}

func runRepoEvents(cmd *cobra.Command, args []string) error {
	owner, name, err := parseRepoArg(args[0])
	if err != nil {
		return err
	}
	return runListing(cmd, repoEventsPage,
		func(ctx context.Context, svc *appServices, page domain.Page) (domain.Listing[domain.ActivityEvent], error) {
			return svc.feed.RepoEvents(ctx, owner, name, page)
		},
		(*renderer).events)
}
