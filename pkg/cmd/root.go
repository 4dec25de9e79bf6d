package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/sqlgen/pkg/consts"
	"github.com/urfave/cli/v3"
)

// Version describes the build, set by the release tooling.
type Version struct {
	Version   string
	Commit    string
	Timestamp string
}

// New creates the sqlgen CLI application.
func New(v Version) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", v.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", v.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", v.Timestamp)
	}

	return &cli.Command{
		Name:  "sqlgen",
		Usage: "Render SQL in a specific dialect",
		Description: `sqlgen parses SQL into a syntax tree and writes it back out as
deterministic, dialect-correct SQL for Microsoft SQL Server or PostgreSQL.`,
		Version: v.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "the sqlgen config file",
				Sources:     cli.EnvVars("SQLGEN_CONFIG"),
				Value:       consts.DefaultConfigFile,
				DefaultText: consts.DefaultConfigFile + " if present",
				Config:      cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "dialect",
				Usage:   "the dialect to render statements in",
				Sources: cli.EnvVars("SQLGEN_DIALECT"),
			},
			&cli.StringFlag{
				Name:  "indent",
				Usage: "the string written once per nesting level",
			},
			&cli.BoolFlag{
				Name:  "continue-on-error",
				Usage: "render the remaining statements of a file after one fails",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "one of debug, info, warn or error",
				Sources: cli.EnvVars("SQLGEN_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console or json",
			},
		},
		Commands: []*cli.Command{
			renderCmd(),
			astCmd(),
			dialectsCmd(),
		},
	}
}

// Run executes the CLI with the given arguments. args[0] is the program name.
func Run(ctx context.Context, v Version, args []string) error {
	return New(v).Run(ctx, args)
}
