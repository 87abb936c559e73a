package domain

// AuthMethod describes how API requests are authenticated.
type AuthMethod string

// Supported authentication methods.
const (
	// AuthMethodPAT uses a personal access token.
	AuthMethodPAT AuthMethod = "pat"

	// AuthMethodNone sends anonymous requests (60 requests per hour).
	AuthMethodNone AuthMethod = "none"
)

// String returns the string representation.
func (m AuthMethod) String() string {
	return string(m)
}

// Description returns a human-readable description of the method.
func (m AuthMethod) Description() string {
	switch m {
	case AuthMethodPAT:
		return "Personal access token"
	case AuthMethodNone:
		return "Anonymous"
	default:
		return "Unknown"
	}
}
