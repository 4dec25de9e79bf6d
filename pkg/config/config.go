package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/consts"
	"github.com/pseudomuto/sqlgen/pkg/dialect"
	"github.com/pseudomuto/sqlgen/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Log controls the CLI logger.
	Log struct {
		// Level is one of debug, info, warn or error
		Level string `yaml:"level,omitempty"`

		// Format is either console or json
		Format string `yaml:"format,omitempty"`
	}

	// Config represents the contents of sqlgen.yaml.
	Config struct {
		// Dialect names the writer used to render statements (mssql or postgres)
		Dialect string `yaml:"dialect"`

		// Indent is written once per nesting level. An empty value means the
		// default of four spaces.
		Indent string `yaml:"indent"`

		// ContinueOnError renders the remaining statements of a file after one
		// fails and reports the failures together
		ContinueOnError bool `yaml:"continue_on_error"`

		// Log contains logger settings
		Log Log `yaml:"log"`
	}
)

// Default returns the configuration used when no sqlgen.yaml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Missing values are filled in from pkg/consts and the dialect is checked
// against the registered writers. An empty document yields the defaults.
//
// Example:
//
//	yamlData := `
//	dialect: postgres
//	indent: "  "
//	continue_on_error: true
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	err = format.Format(os.Stdout, cfg.FormatterOptions(), stmts...)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate reports configuration values no component can honor.
func (c *Config) Validate() error {
	if _, err := dialect.New(c.Dialect, c.Indent, io.Discard); err != nil {
		return err
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return errors.Errorf("unknown log format %q (known: console, json)", c.Log.Format)
	}

	return nil
}

// FormatterOptions returns the options statements are formatted with.
func (c *Config) FormatterOptions() format.FormatterOptions {
	return format.FormatterOptions{
		Dialect:         c.Dialect,
		Indent:          c.Indent,
		ContinueOnError: c.ContinueOnError,
	}
}

func (c *Config) applyDefaults() {
	if c.Dialect == "" {
		c.Dialect = consts.DefaultDialect
	}
	if c.Indent == "" {
		c.Indent = consts.DefaultIndent
	}
	if c.Log.Level == "" {
		c.Log.Level = consts.DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = consts.DefaultLogFormat
	}
}
