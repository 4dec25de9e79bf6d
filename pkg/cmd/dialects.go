package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pseudomuto/sqlgen/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// dialectsCmd lists the registered dialects, marking the configured one.
func dialectsCmd() *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List the supported dialects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			for _, name := range dialect.Names() {
				marker := " "
				if strings.EqualFold(name, strings.TrimSpace(e.cfg.Dialect)) {
					marker = "*"
				}
				fmt.Fprintf(cmd.Root().Writer, "%s %s\n", marker, name)
			}

			return nil
		},
	}
}
