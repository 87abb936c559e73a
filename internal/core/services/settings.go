package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driven"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyToken         = "github.token"
	KeyBaseURL       = "github.base_url"
	KeyDefaultAvatar = "display.default_avatar"
	KeyPerPage       = "display.per_page"

	// LanguagesPrefix namespaces per-language colour overrides.
	LanguagesPrefix = "languages"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// SettingsService manages user configuration.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// KnownKeys returns the fixed configuration keys. Language overrides
// are additionally accepted as "languages.<Name>".
func KnownKeys() []string {
	return []string{KeyToken, KeyBaseURL, KeyDefaultAvatar, KeyPerPage}
}

// Display returns the resolved display settings with defaults applied.
func (s *SettingsService) Display() domain.DisplaySettings {
	settings := domain.DefaultDisplaySettings()

	if avatar := s.configStore.GetString(KeyDefaultAvatar); avatar != "" {
		settings.DefaultAvatar = avatar
	}
	settings.PerPage = domain.ClampPerPage(s.configStore.GetInt(KeyPerPage))

	if colors := s.configStore.GetStringMap(LanguagesPrefix); len(colors) > 0 {
		settings.LanguageColors = colors
	}
	return settings
}

// Token returns the configured access token.
func (s *SettingsService) Token() string {
	return s.configStore.GetString(KeyToken)
}

// BaseURL returns the configured API base URL.
func (s *SettingsService) BaseURL() string {
	return s.configStore.GetString(KeyBaseURL)
}

// Get returns the stored value of key.
func (s *SettingsService) Get(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	val, ok := s.configStore.Get(key)
	if !ok {
		return "", false, nil
	}
	return fmt.Sprint(val), true, nil
}

// Set validates and stores value under key.
func (s *SettingsService) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	var stored any = value
	switch {
	case key == KeyPerPage:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > domain.MaxPerPage {
			return fmt.Errorf("%w: %s must be between 1 and %d", domain.ErrInvalidInput, key, domain.MaxPerPage)
		}
		stored = n
	case key == KeyBaseURL, key == KeyDefaultAvatar:
		if err := validateURL(value); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
	case key == KeyToken:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is empty, use unset to remove it", domain.ErrInvalidInput, key)
		}
	case strings.HasPrefix(key, LanguagesPrefix+"."):
		if value != "" && !hexColor.MatchString(value) {
			return fmt.Errorf("%w: %s must be a hex colour like #00ADD8", domain.ErrInvalidInput, key)
		}
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Unset removes key.
func (s *SettingsService) Unset(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := s.configStore.Unset(key); err != nil {
		return fmt.Errorf("unset %s: %w", key, err)
	}
	return nil
}

// Keys returns every key that currently has a value.
func (s *SettingsService) Keys() []string {
	return s.configStore.Keys()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// validateKey accepts the known keys and language overrides.
func validateKey(key string) error {
	for _, k := range KnownKeys() {
		if key == k {
			return nil
		}
	}
	if name, ok := strings.CutPrefix(key, LanguagesPrefix+"."); ok && name != "" {
		return nil
	}
	return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
}

// validateURL requires an absolute http or https URL.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", raw)
	}
	return nil
}
