package github

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driven"
	"github.com/custodia-labs/hubfeed/internal/normalisers/format"
)

// shortSHALength is the abbreviated commit hash length shown in lists.
const shortSHALength = 7

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Config is the injected configuration of a Normaliser.
type Config struct {
	// Colors looks up language colours. Nil disables colouring.
	Colors driven.LanguageColors

	// DefaultAvatar is used for commits without a linked account.
	// Empty means domain.DefaultAvatarURL.
	DefaultAvatar string

	// Now is the clock used for relative dates. Nil means time.Now.
	Now func() time.Time
}

// Normaliser projects raw GitHub records. It holds only read-only
// configuration and is safe for concurrent use.
type Normaliser struct {
	colors        driven.LanguageColors
	defaultAvatar string
	times         *format.TimeFormatter
}

// New creates a Normaliser from cfg.
func New(cfg Config) *Normaliser {
	colors := cfg.Colors
	if colors == nil {
		colors = noColors{}
	}
	avatar := cfg.DefaultAvatar
	if avatar == "" {
		avatar = domain.DefaultAvatarURL
	}
	return &Normaliser{
		colors:        colors,
		defaultAvatar: avatar,
		times:         format.NewTimeFormatter(cfg.Now),
	}
}

// NewFromSettings creates a Normaliser from resolved display settings.
func NewFromSettings(settings domain.DisplaySettings, colors driven.LanguageColors) *Normaliser {
	return New(Config{
		Colors:        colors,
		DefaultAvatar: settings.DefaultAvatar,
	})
}

// noColors is the colour table used when none is configured.
type noColors struct{}

func (noColors) Color(string) string { return "" }

// decodeList decodes a JSON array resource.
func decodeList[T any](raw *domain.RawResource) ([]T, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	var items []T
	if err := json.Unmarshal(raw.Content, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", raw.Kind, err)
	}
	return items, nil
}

// decodeObject decodes a JSON object resource.
func decodeObject[T any](raw *domain.RawResource) (*T, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	item := new(T)
	if err := json.Unmarshal(raw.Content, item); err != nil {
		return nil, fmt.Errorf("decode %s: %w", raw.Kind, err)
	}
	return item, nil
}

// shortSHA abbreviates a commit hash. Hashes shorter than the
// abbreviation are returned whole.
func shortSHA(sha string) string {
	if len(sha) <= shortSHALength {
		return sha
	}
	return sha[:shortSHALength]
}

// lastSegment returns the part of ref after its final slash, so
// "refs/heads/main" becomes "main".
func lastSegment(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
