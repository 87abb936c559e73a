// Command hubfeed browses GitHub profiles, repositories and activity.
package main

import (
	"os"

	"github.com/custodia-labs/hubfeed/internal/adapters/driving/cli"
	"github.com/custodia-labs/hubfeed/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
