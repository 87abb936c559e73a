package driven

// LanguageColors maps a programming language name to its display colour.
// The table is sparse: unknown languages yield the empty string.
type LanguageColors interface {
	// Color returns the hex colour for language, or "" when none is known.
	Color(language string) string
}
