package driven

import (
	"context"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

// TokenProvider provides access tokens for authenticated API calls.
type TokenProvider interface {
	// GetToken returns the access token, or "" for anonymous access.
	GetToken(ctx context.Context) (string, error)

	// AuthMethod returns the authentication method (pat, none).
	AuthMethod() domain.AuthMethod

	// IsAuthenticated returns true if requests will carry a token.
	IsAuthenticated() bool
}
