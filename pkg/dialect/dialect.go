// Package dialect constructs SQL writers by dialect name.
package dialect

import (
	"io"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/dialect/mssql"
	"github.com/pseudomuto/sqlgen/pkg/dialect/postgres"
	"github.com/pseudomuto/sqlgen/pkg/writer"
)

// ErrUnknownDialect is returned by New for names with no registered writer.
var ErrUnknownDialect = errors.New("unknown dialect")

type constructor func(indent string, w io.Writer) writer.SQLWriter

var constructors = map[string]constructor{
	mssql.Dialect: func(indent string, w io.Writer) writer.SQLWriter {
		return mssql.New(indent, w)
	},
	postgres.Dialect: func(indent string, w io.Writer) writer.SQLWriter {
		return postgres.New(indent, w)
	},
}

// New returns the writer for the named dialect. Names are matched
// case-insensitively.
func New(name, indent string, w io.Writer) (writer.SQLWriter, error) {
	ctor, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDialect, "%q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(indent, w), nil
}

// Names returns the registered dialect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
