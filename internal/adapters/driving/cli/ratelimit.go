package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var rateLimitCmd = &cobra.Command{
	Use:   "rate-limit",
	Short: "Show the remaining API quota",
	Long:  `Shows the core API quota of the configured token. The check itself is free.`,
	Args:  cobra.NoArgs,
	RunE:  runRateLimit,
}

func init() {
	rootCmd.AddCommand(rateLimitCmd)
}

func runRateLimit(cmd *cobra.Command, _ []string) error {
	svc, err := ensureApp()
	if err != nil {
		return err
	}

	status, err := svc.rateLimits.RateLimit(cmd.Context())
	if err != nil {
		return fmt.Errorf("rate-limit failed: %w", err)
	}

	r := newRenderer(cmd)
	if r.json {
		return r.JSON(status)
	}

	reset := "unknown"
	if !status.Reset.IsZero() {
		reset = fmt.Sprintf("%s (%s)", humanize.Time(status.Reset), status.Reset.Local().Format(time.Kitchen))
	}
	r.Fields("Rate limit", [][2]string{
		{"Remaining", fmt.Sprintf("%s of %s", count(status.Remaining), count(status.Limit))},
		{"Resets", reset},
	})
	return nil
}
