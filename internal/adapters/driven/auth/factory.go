package auth

import (
	"os"
	"strings"

	"github.com/custodia-labs/hubfeed/internal/core/ports/driven"
)

// EnvToken is the environment variable that overrides the configured token.
const EnvToken = "GITHUB_TOKEN"

// NewTokenProvider picks a provider for the given token, preferring the
// GITHUB_TOKEN environment variable over the configured value.
// Without any token, requests are anonymous.
func NewTokenProvider(configured string) driven.TokenProvider {
	token := strings.TrimSpace(os.Getenv(EnvToken))
	if token == "" {
		token = strings.TrimSpace(configured)
	}
	if token == "" {
		return NewNullTokenProvider()
	}
	return NewPATProvider(token)
}
