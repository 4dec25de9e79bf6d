package format

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/ast"
	"github.com/pseudomuto/sqlgen/pkg/consts"
	"github.com/pseudomuto/sqlgen/pkg/dialect"
	"github.com/pseudomuto/sqlgen/pkg/writer"
)

const (
	terminator = ";"
	separator  = "\n\n"
)

// FormatterOptions controls formatting behavior
type FormatterOptions struct {
	// Dialect names the writer statements are rendered with
	Dialect string
	// Indent is written once per nesting level
	Indent string
	// ContinueOnError skips failing statements instead of stopping at the
	// first one. Failures are reported together in a BatchError.
	ContinueOnError bool
}

// Defaults are the standard formatting options
var Defaults = FormatterOptions{
	Dialect: consts.DefaultDialect,
	Indent:  consts.DefaultIndent,
}

// Formatter renders statements with a fixed set of options
type Formatter struct {
	options FormatterOptions
}

// New creates a new Formatter with the specified options
func New(options FormatterOptions) *Formatter {
	return &Formatter{options: options}
}

// Format writes every non-nil statement to w.
func Format(w io.Writer, options FormatterOptions, stmts ...ast.Statement) error {
	return New(options).Format(w, stmts...)
}

// Statement renders a single statement, without a terminator.
func (f *Formatter) Statement(stmt ast.Statement) (string, error) {
	var buf bytes.Buffer
	if err := f.render(&buf, stmt); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Format writes stmts to w, each terminated by ";" and separated by a blank
// line. Nil statements are skipped.
func (f *Formatter) Format(w io.Writer, stmts ...ast.Statement) error {
	var (
		buf     bytes.Buffer
		batch   BatchError
		written int
	)

	if _, err := dialect.New(f.options.Dialect, f.options.Indent, io.Discard); err != nil {
		return err
	}

	for i, stmt := range stmts {
		if stmt == nil {
			continue
		}

		buf.Reset()
		if err := f.render(&buf, stmt); err != nil {
			if !f.options.ContinueOnError {
				return errors.Wrapf(err, "statement %d", i+1)
			}

			batch.Failures = append(batch.Failures, StatementError{Index: i + 1, Err: err})
			continue
		}

		if written > 0 {
			if _, err := io.WriteString(w, separator); err != nil {
				return &writer.IOError{Err: err}
			}
		}

		buf.WriteString(terminator)
		if _, err := buf.WriteTo(w); err != nil {
			return &writer.IOError{Err: err}
		}
		written++
	}

	if len(batch.Failures) > 0 {
		return &batch
	}
	return nil
}

func (f *Formatter) render(w io.Writer, stmt ast.Statement) error {
	sw, err := dialect.New(f.options.Dialect, f.options.Indent, w)
	if err != nil {
		return err
	}
	return sw.WriteStatement(stmt)
}
