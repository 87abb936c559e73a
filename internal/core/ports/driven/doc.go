// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ResourceSource: Fetches raw GitHub records (connectors/github)
//   - Normaliser: Projects raw records into views (normalisers/github)
//   - ConfigStore: Application configuration (config/file, storage/memory)
//   - TokenProvider: Supplies the API token (adapters/driven/auth)
//
// # Optional Interfaces
//
//   - LanguageColors: Colour table for repository languages. Without it,
//     views carry no colour.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
