package format_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pseudomuto/sqlgen/pkg/ast"
	"github.com/pseudomuto/sqlgen/pkg/dialect"
	. "github.com/pseudomuto/sqlgen/pkg/format"
	"github.com/pseudomuto/sqlgen/pkg/parser"
	"github.com/pseudomuto/sqlgen/pkg/writer"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func parse(t *testing.T, sql string) []ast.Statement {
	t.Helper()

	stmts, err := parser.ParseString(sql)
	require.NoError(t, err)
	return stmts
}

func TestFormatter_Options(t *testing.T) {
	stmts := parse(t, "SELECT id FROM (SELECT id FROM users) AS u")

	t.Run("custom indent", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Format(&buf, FormatterOptions{Dialect: "postgres", Indent: "\t"}, stmts...))
		require.Equal(t, "SELECT id\nFROM (SELECT id\n\tFROM users) AS u;", buf.String())
	})

	t.Run("dialect names are case insensitive", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Format(&buf, FormatterOptions{Dialect: "MSSQL", Indent: "  "}, stmts...))
		require.Equal(t, "SELECT id\nFROM (SELECT id\n  FROM users) AS u;", buf.String())
	})

	t.Run("unknown dialect", func(t *testing.T) {
		var buf bytes.Buffer
		err := Format(&buf, FormatterOptions{Dialect: "oracle"}, stmts...)
		require.ErrorIs(t, err, dialect.ErrUnknownDialect)
		require.Empty(t, buf.String())
	})
}

func TestFormatter_SQL(t *testing.T) {
	stmts := parse(t, "START TRANSACTION; DELETE FROM users WHERE id = 1; COMMIT;")

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, Defaults, stmts...))
	require.Equal(t, "BEGIN TRANSACTION;\n\nDELETE FROM users\nWHERE id = 1;\n\nCOMMIT;", buf.String())
}

func TestFormatter_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, Defaults))
	require.Empty(t, buf.String())

	require.NoError(t, Format(&buf, Defaults, nil, nil))
	require.Empty(t, buf.String())

	require.NoError(t, Format(&buf, Defaults, nil, &ast.Commit{}, nil))
	require.Equal(t, "COMMIT;", buf.String())
}

func TestFormatter_StopsAtFirstFailure(t *testing.T) {
	stmts := parse(t, "COMMIT; SELECT id FROM t LIMIT 1; ROLLBACK;")

	var buf bytes.Buffer
	err := Format(&buf, Defaults, stmts...)
	require.ErrorIs(t, err, writer.ErrUnsupported)
	require.ErrorContains(t, err, "statement 2")

	var unsupported *writer.UnsupportedConstructError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "LIMIT", unsupported.Construct)

	require.Equal(t, "COMMIT;", buf.String())
}

func TestFormatter_ContinueOnError(t *testing.T) {
	stmts := parse(t, "COMMIT; SELECT id FROM t LIMIT 1; SHOW search_path; ROLLBACK;")

	opts := Defaults
	opts.ContinueOnError = true

	var buf bytes.Buffer
	err := Format(&buf, opts, stmts...)

	var batch *BatchError
	require.ErrorAs(t, err, &batch)
	require.Len(t, batch.Failures, 2)
	require.Equal(t, 2, batch.Failures[0].Index)
	require.Equal(t, 3, batch.Failures[1].Index)
	require.ErrorIs(t, err, writer.ErrUnsupported)
	require.ErrorContains(t, err, "2 statement(s) failed")

	// failed statements leave nothing behind
	require.Equal(t, "COMMIT;\n\nROLLBACK;", buf.String())
}

func TestFormatter_MalformedStatement(t *testing.T) {
	opts := Defaults
	opts.ContinueOnError = true

	var buf bytes.Buffer
	err := Format(&buf, opts, &ast.Query{Body: &ast.Select{}}, &ast.Commit{})
	require.ErrorIs(t, err, writer.ErrMalformed)
	require.Equal(t, "COMMIT;", buf.String())
}

func TestFormatter_IOFailure(t *testing.T) {
	err := Format(failingWriter{}, Defaults, &ast.Commit{})
	require.ErrorIs(t, err, writer.ErrIO)
	require.ErrorContains(t, err, "disk full")
}

func TestFormatter_Statement(t *testing.T) {
	f := New(FormatterOptions{Dialect: "postgres", Indent: "    "})

	sql, err := f.Statement(&ast.Rollback{Chain: true})
	require.NoError(t, err)
	require.Equal(t, "ROLLBACK AND CHAIN", sql)

	_, err = New(Defaults).Statement(&ast.Rollback{Chain: true})
	require.ErrorIs(t, err, writer.ErrUnsupported)
}
