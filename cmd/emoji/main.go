package main

import (
	"os"

	"github.com/npillmayer/emojis/internal/cli"
)

// Build variables set by ldflags
var version = "dev"

func main() {
	cmd := cli.NewRootCommand(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
