// Package domain defines the core entities of hubfeed.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawResource: Opaque JSON bytes fetched from the GitHub API
//   - RepoSummary, UserSummary, CommitSummary: Compact list views
//   - UserProfile, RepoDetail: Single-record views
//   - ActivityEvent and EventPayload: Normalised activity feed entries
//   - DisplaySettings: Resolved user preferences for views
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
