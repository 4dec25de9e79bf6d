// Package cmd provides CLI commands for the sqlgen tool.
//
// # Available Commands
//
//   - render: parse SQL files and write them back out in a dialect
//   - ast: dump the syntax tree the parser produces for SQL files
//   - dialects: list the dialects statements can be rendered in
//
// # Global Options
//
//   - --config, -c: the config file (defaults to sqlgen.yaml when present)
//   - --dialect: overrides the configured dialect
//   - --indent: overrides the configured indent
//   - --continue-on-error: render the rest of a file after a statement fails
//   - --log-level, --log-format: logger settings
//
// Flags take precedence over values from the config file, which take
// precedence over the defaults.
//
// # Example Usage
//
//	sqlgen render queries.sql                    # render to stdout
//	sqlgen --dialect postgres render -w db/      # rewrite every .sql file in db/
//	sqlgen ast queries.sql                       # inspect the parsed tree
//	sqlgen dialects
package cmd
