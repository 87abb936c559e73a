package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/logger"
)

// runListing fetches one page with fetch and renders it. In table mode a
// footer points at the next page.
func runListing[T any](
	cmd *cobra.Command,
	page *domain.Page,
	fetch func(ctx context.Context, svc *appServices, page domain.Page) (domain.Listing[T], error),
	render func(r *renderer, items []T),
) error {
	svc, err := ensureApp()
	if err != nil {
		return err
	}

	defer logger.Timed(cmd.Name())()

	listing, err := fetch(cmd.Context(), svc, *page)
	if err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Name(), err)
	}

	r := newRenderer(cmd)
	if r.json {
		return r.JSON(listing.Items)
	}

	render(r, listing.Items)
	if listing.NextPage > 0 {
		r.Footer("More results: --page %d", listing.NextPage)
	}
	return nil
}
