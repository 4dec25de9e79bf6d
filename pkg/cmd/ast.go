package cmd

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/parser"
	"github.com/urfave/cli/v3"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	DisableMethods:          true,
}

// astCmd dumps the syntax tree the parser builds for each statement.
func astCmd() *cli.Command {
	return &cli.Command{
		Name:      "ast",
		Usage:     "Print the syntax tree of SQL files",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := pathArg(cmd.Args().Slice())
			if err != nil {
				return err
			}

			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			files, err := sqlFiles(path)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			for _, file := range files {
				stmts, err := parser.ParseFile(file)
				if err != nil {
					return errors.Wrapf(err, "failed to parse file: %s", file)
				}

				e.log.Debug("parsed", "file", file, "statements", len(stmts))
				for i, stmt := range stmts {
					fmt.Fprintf(w, "-- %s:%d\n", file, i+1)
					dumper.Fdump(w, stmt)
				}
			}

			return nil
		},
	}
}
