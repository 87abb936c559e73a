package domain

// Display setting defaults.
const (
	// DefaultAvatarURL is shown for commits without a linked account.
	DefaultAvatarURL = "https://avatars.githubusercontent.com/u/0?v=4"

	// DefaultPerPage is the page size requested when none is configured.
	DefaultPerPage = 30

	// MaxPerPage is the largest page size the upstream API honours.
	MaxPerPage = 100
)

// DisplaySettings is the process-wide configuration injected into the
// normaliser and the query builder.
type DisplaySettings struct {
	// DefaultAvatar replaces the avatar of commits with no linked account.
	DefaultAvatar string

	// PerPage is the page size used when building list queries.
	PerPage int

	// LanguageColors overrides entries of the built-in colour table.
	LanguageColors map[string]string
}

// DefaultDisplaySettings returns settings with every default applied.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		DefaultAvatar: DefaultAvatarURL,
		PerPage:       DefaultPerPage,
	}
}

// ClampPerPage bounds a page size to the range the API accepts.
// Non-positive values fall back to DefaultPerPage.
func ClampPerPage(n int) int {
	switch {
	case n <= 0:
		return DefaultPerPage
	case n > MaxPerPage:
		return MaxPerPage
	default:
		return n
	}
}
