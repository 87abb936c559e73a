package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

// parseRepoArg splits "owner/repo". A github.com URL or a trailing ".git"
// is accepted as well.
func parseRepoArg(arg string) (owner, repo string, err error) {
	s := strings.TrimSpace(arg)
	for _, prefix := range []string{"https://github.com/", "http://github.com/", "github.com/"} {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "/"), ".git")

	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: expected owner/repo, got %q", domain.ErrInvalidInput, arg)
	}
	return parts[0], parts[1], nil
}

// parseLoginArg validates a user or organisation login.
func parseLoginArg(arg string) (string, error) {
	login := strings.TrimPrefix(strings.TrimSpace(arg), "@")
	if login == "" || strings.ContainsAny(login, "/ ") {
		return "", fmt.Errorf("%w: invalid login %q", domain.ErrInvalidInput, arg)
	}
	return login, nil
}

// addPageFlags registers --page and --per-page on cmd.
func addPageFlags(cmd *cobra.Command) *domain.Page {
	p := &domain.Page{}
	cmd.Flags().IntVar(&p.Number, "page", 1, "page number")
	cmd.Flags().IntVar(&p.PerPage, "per-page", 0, "results per page, 1-100 (default from config)")
	return p
}
