// Package cli implements the hubfeed command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubfeed/internal/logger"
)

var (
	// version is set at build time via SetVersion.
	version = "dev"

	verbose    bool
	jsonOutput bool
	configDir  string
)

var rootCmd = &cobra.Command{
	Use:   "hubfeed",
	Short: "Browse GitHub profiles, repositories and activity from the terminal",
	Long: `hubfeed fetches public GitHub data and prints it as compact views:
repository and user lists, profiles, commits and activity feeds.

Views can also be produced offline from saved API responses with
'hubfeed normalise'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "print requests and resolved configuration to stderr")
	pf.BoolVar(&jsonOutput, "json", false, "output views as JSON")
	pf.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.hubfeed)")
}

// SetVersion sets the version reported by `hubfeed version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
