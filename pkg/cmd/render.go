package cmd

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/consts"
	"github.com/pseudomuto/sqlgen/pkg/format"
	"github.com/pseudomuto/sqlgen/pkg/parser"
	"github.com/urfave/cli/v3"
)

// renderCmd parses SQL files and writes them back out in the configured
// dialect, either to stdout or, with -w, over the source files.
//
// A directory argument renders every .sql file below it. With
// continue-on-error, statements the dialect cannot express are logged and
// skipped; a file with skipped statements is never written back.
//
// Examples:
//
//	sqlgen render queries.sql
//	sqlgen --dialect postgres render -w db/
func renderCmd() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render SQL files in a dialect",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
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

			failed := 0
			for _, file := range files {
				n, err := e.renderFile(file, cmd.Bool("write"), cmd.Root().Writer)
				if err != nil {
					return errors.Wrapf(err, "failed to render file: %s", file)
				}
				failed += n
			}

			if failed > 0 {
				return errors.Errorf("%d statement(s) could not be rendered", failed)
			}
			return nil
		},
	}
}

// renderFile renders one file and returns the number of statements that were
// skipped under continue-on-error.
func (e *env) renderFile(path string, writeBack bool, w io.Writer) (int, error) {
	log := e.log.With("file", path)

	stmts, err := parser.ParseFile(path)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	err = format.Format(&buf, e.cfg.FormatterOptions(), stmts...)

	var batch *format.BatchError
	switch {
	case errors.As(err, &batch):
		for _, f := range batch.Failures {
			log.Error("statement skipped", "statement", f.Index, "error", f.Err.Error())
		}
	case err != nil:
		return 0, err
	}

	skipped := 0
	if batch != nil {
		skipped = len(batch.Failures)
	}

	if buf.Len() > 0 {
		buf.WriteString("\n")
	}

	if !writeBack {
		log.Debug("rendered", "statements", len(stmts)-skipped)
		if _, err := buf.WriteTo(w); err != nil {
			return skipped, errors.Wrap(err, "failed to write rendered content to output")
		}
		return skipped, nil
	}

	if skipped > 0 {
		log.Warn("not writing file with skipped statements")
		return skipped, nil
	}

	if err := os.WriteFile(path, buf.Bytes(), consts.ModeFile); err != nil {
		return 0, errors.Wrapf(err, "failed to write rendered content to file: %s", path)
	}

	log.Info("wrote file", "statements", len(stmts))
	return 0, nil
}
