package domain

import "fmt"

// ResourceKind names the upstream record shape carried by a RawResource.
type ResourceKind string

// Known resource kinds.
const (
	// KindRepos is a JSON array of repositories.
	KindRepos ResourceKind = "repos"

	// KindUsers is a JSON array of users.
	KindUsers ResourceKind = "users"

	// KindForks is a JSON array of fork repositories (owners are projected).
	KindForks ResourceKind = "forks"

	// KindUser is a single user object.
	KindUser ResourceKind = "user"

	// KindRepo is a single repository object.
	KindRepo ResourceKind = "repo"

	// KindTrending is a JSON array of trending repositories.
	KindTrending ResourceKind = "trending"

	// KindCommits is a JSON array of repository commits.
	KindCommits ResourceKind = "commits"

	// KindEvents is a JSON array of activity events.
	KindEvents ResourceKind = "events"

	// KindStargazers is a JSON array of users who starred a repository.
	KindStargazers ResourceKind = "stargazers"
)

// AllResourceKinds returns every kind the normaliser accepts.
func AllResourceKinds() []ResourceKind {
	return []ResourceKind{
		KindRepos, KindUsers, KindForks, KindUser, KindRepo,
		KindTrending, KindCommits, KindEvents, KindStargazers,
	}
}

// ParseResourceKind converts a user-supplied name into a ResourceKind.
func ParseResourceKind(s string) (ResourceKind, error) {
	for _, k := range AllResourceKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: resource kind %q", ErrUnsupportedType, s)
}

// String returns the string representation.
func (k ResourceKind) String() string {
	return string(k)
}

// RawResource represents opaque JSON fetched from the upstream API.
// It is the connector's output before normalisation.
type RawResource struct {
	// Kind is the record shape the content is expected to have.
	Kind ResourceKind

	// URI is the request location the content came from.
	URI string

	// Content is the untouched response body.
	Content []byte

	// NextPage is the next page number, or 0 when this was the last page.
	NextPage int
}

// Page selects one page of a list request. Zero values defer to the
// configured defaults.
type Page struct {
	// Number is the 1-based page index.
	Number int

	// PerPage overrides the configured page size when positive.
	PerPage int
}
