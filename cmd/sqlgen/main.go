package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pseudomuto/sqlgen/pkg/cmd"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cmd.Run(ctx, cmd.Version{Version: version, Commit: commit, Timestamp: date}, os.Args)
}
