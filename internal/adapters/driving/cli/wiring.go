package cli

import (
	"context"
	"fmt"

	"github.com/custodia-labs/hubfeed/internal/adapters/driven/auth"
	"github.com/custodia-labs/hubfeed/internal/adapters/driven/colors"
	"github.com/custodia-labs/hubfeed/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hubfeed/internal/adapters/driven/storage/memory"
	connector "github.com/custodia-labs/hubfeed/internal/connectors/github"
	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driven"
	"github.com/custodia-labs/hubfeed/internal/core/ports/driving"
	"github.com/custodia-labs/hubfeed/internal/core/services"
	"github.com/custodia-labs/hubfeed/internal/logger"
	normaliser "github.com/custodia-labs/hubfeed/internal/normalisers/github"
)

// rateLimitReader reports the upstream quota.
type rateLimitReader interface {
	RateLimit(ctx context.Context) (domain.RateStatus, error)
}

// appServices holds the wired driving ports used by commands.
type appServices struct {
	feed       driving.FeedService
	settings   driving.SettingsService
	rateLimits rateLimitReader
}

// app is built on first use so commands such as `version` need no config.
// Tests replace it directly.
var app *appServices

// ensureApp wires services once per process.
func ensureApp() (*appServices, error) {
	if app != nil {
		return app, nil
	}
	a, err := wire(configDir)
	if err != nil {
		return nil, err
	}
	app = a
	return app, nil
}

// wire builds the adapters and services from the configuration in dir.
func wire(dir string) (*appServices, error) {
	logger.Section("Configuration")

	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("config unavailable (%v), using defaults", err)
		store = memory.NewConfigStore()
	} else {
		logger.Debug("config file: %s", fileStore.Path())
		store = fileStore
	}

	settings := services.NewSettingsService(store)
	display := settings.Display()

	palette, err := colors.New(display.LanguageColors)
	if err != nil {
		return nil, fmt.Errorf("language colours: %w", err)
	}

	tokens := auth.NewTokenProvider(settings.Token())
	logger.Debug("auth: %s, per page: %d, colours: %d", tokens.AuthMethod().Description(), display.PerPage, palette.Len())

	client := connector.NewClient(connector.Options{
		TokenProvider: tokens,
		BaseURL:       settings.BaseURL(),
		PerPage:       display.PerPage,
	})

	return &appServices{
		feed:       services.NewFeedService(client, normaliser.NewFromSettings(display, palette)),
		settings:   settings,
		rateLimits: client,
	}, nil
}
