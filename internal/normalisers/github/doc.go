// Package github normalises GitHub REST API records into presentation views.
//
// The package contains:
//   - Projectors for repositories, users, fork owners, user profiles,
//     repository details, trending repositories and commits
//   - An event normaliser that dispatches on the event type tag through a
//     registry of payload-shaping functions
//
// Raw JSON is decoded into go-github structs, whose pointer fields model
// absent or null upstream values, and read back through their nil-safe
// accessors. Nothing in this package performs I/O or mutates its input.
//
// # Fallbacks
//
//   - A commit without a linked account shows the git author name and the
//     configured default avatar.
//   - Languages missing from the colour table get an empty colour.
//   - Event types without a shaping rule get an empty payload.
//   - A CreateEvent ref is passed through as-is, including null, which marks
//     the creation of a repository rather than a branch or tag.
//   - A GollumEvent only reports the first page of its batch.
package github
