package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/config"
	"github.com/pseudomuto/sqlgen/pkg/logger"
	"github.com/urfave/cli/v3"
)

// env is the resolved configuration shared by every command.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func newEnv(cmd *cli.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cmd.Root().ErrWriter)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, log: log.With("dialect", cfg.Dialect)}, nil
}

// loadConfig reads the config file and applies flag overrides. A missing file
// is only an error when it was named explicitly.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) || cmd.IsSet("config") {
			return nil, err
		}
		cfg = config.Default()
	}

	if cmd.IsSet("dialect") {
		cfg.Dialect = cmd.String("dialect")
	}
	if cmd.IsSet("indent") {
		cfg.Indent = cmd.String("indent")
	}
	if cmd.IsSet("continue-on-error") {
		cfg.ContinueOnError = cmd.Bool("continue-on-error")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
