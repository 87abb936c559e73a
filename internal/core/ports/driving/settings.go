package driving

import "github.com/custodia-labs/hubfeed/internal/core/domain"

// SettingsService manages user configuration.
type SettingsService interface {
	// Display returns the resolved display settings with defaults applied.
	Display() domain.DisplaySettings

	// Token returns the configured access token, or "".
	Token() string

	// BaseURL returns the configured API base URL, or "" for github.com.
	BaseURL() string

	// Get returns the stored value of key and whether it is set.
	Get(key string) (string, bool, error)

	// Set validates and stores value under key.
	Set(key, value string) error

	// Unset removes key.
	Unset(key string) error

	// Keys returns every key that currently has a value.
	Keys() []string

	// Path returns the configuration file path.
	Path() string
}
