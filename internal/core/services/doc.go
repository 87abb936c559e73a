// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (adapters): a FeedService pairs a resource source with a
// normaliser, a SettingsService reads and validates configuration.
//
// Services are pure Go with no external dependencies.
package services
