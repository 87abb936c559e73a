package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/hubfeed/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/core/services"
	"github.com/custodia-labs/hubfeed/internal/normalisers/github"
)

var testNow = time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)

// fakeRateLimits returns a fixed quota.
type fakeRateLimits struct {
	status domain.RateStatus
	err    error
}

func (f *fakeRateLimits) RateLimit(context.Context) (domain.RateStatus, error) {
	return f.status, f.err
}

// testApp holds the fakes behind app for one test.
type testApp struct {
	source     *memory.Source
	store      *memory.ConfigStore
	rateLimits *fakeRateLimits
}

// setupApp replaces app with in-memory services and restores it after t.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	ta := &testApp{
		source:     memory.NewSource(),
		store:      memory.NewConfigStore(),
		rateLimits: &fakeRateLimits{},
	}
	n := github.New(github.Config{
		DefaultAvatar: "https://example.com/default.png",
		Now:           func() time.Time { return testNow },
	})

	previous := app
	app = &appServices{
		feed:       services.NewFeedService(ta.source, n),
		settings:   services.NewSettingsService(ta.store),
		rateLimits: ta.rateLimits,
	}
	t.Cleanup(func() { app = previous })
	return ta
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}
