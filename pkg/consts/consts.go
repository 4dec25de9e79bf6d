package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the config file looked up in the working directory
	DefaultConfigFile = "sqlgen.yaml"

	// DefaultDialect is used when neither the config nor a flag names one
	DefaultDialect = "mssql"

	// DefaultIndent is the string written once per nesting level
	DefaultIndent = "    "

	// DefaultLogLevel is the CLI log level
	DefaultLogLevel = "info"

	// DefaultLogFormat is the CLI log encoding
	DefaultLogFormat = "console"

	// SQLExt is the extension of files picked up when rendering a directory
	SQLExt = ".sql"
)
