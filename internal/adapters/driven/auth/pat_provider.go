package auth

import (
	"context"
	"errors"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driven"
)

// Ensure PATProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*PATProvider)(nil)

// PATProvider provides a static personal access token.
// PATs don't expire from the client's point of view and need no refresh.
type PATProvider struct {
	token string
}

// NewPATProvider creates a token provider for a personal access token.
func NewPATProvider(token string) *PATProvider {
	return &PATProvider{token: token}
}

// GetToken returns the PAT.
func (p *PATProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", errors.New("personal access token is empty")
	}
	return p.token, nil
}

// AuthMethod returns AuthMethodPAT.
func (p *PATProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodPAT
}

// IsAuthenticated returns true if a token is set.
func (p *PATProvider) IsAuthenticated() bool {
	return p.token != ""
}
