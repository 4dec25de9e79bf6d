package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/sqlgen/pkg/consts"
	"github.com/stretchr/testify/require"
)

const (
	unformattedSQL = "select id,name from users where id=1;delete from users where id=2"
	renderedSQL    = "SELECT id, name\nFROM users\nWHERE id = 1;\n\nDELETE FROM users\nWHERE id = 2;\n"
)

func TestRenderCommand_RequiresPath(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "render")
	require.ErrorContains(t, err, "exactly one path argument is required")

	_, err = runCLI(t, t.TempDir(), "render", "a.sql", "b.sql")
	require.ErrorContains(t, err, "exactly one path argument is required")
}

func TestRenderCommand_SingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "test.sql"), unformattedSQL)

	res, err := runCLI(t, dir, "render", "test.sql")
	require.NoError(t, err)
	require.Equal(t, renderedSQL, res.stdout)

	// source is untouched
	content, err := os.ReadFile(filepath.Join(dir, "test.sql"))
	require.NoError(t, err)
	require.Equal(t, unformattedSQL, string(content))
}

func TestRenderCommand_WriteBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "test.sql"), unformattedSQL)

	res, err := runCLI(t, dir, "render", "-w", "test.sql")
	require.NoError(t, err)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, "wrote file")

	content, err := os.ReadFile(filepath.Join(dir, "test.sql"))
	require.NoError(t, err)
	require.Equal(t, renderedSQL, string(content))

	// rendering is idempotent
	_, err = runCLI(t, dir, "render", "-w", "test.sql")
	require.NoError(t, err)

	again, err := os.ReadFile(filepath.Join(dir, "test.sql"))
	require.NoError(t, err)
	require.Equal(t, string(content), string(again))
}

func TestRenderCommand_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "db", "one.sql"), "begin transaction")
	writeFile(t, filepath.Join(dir, "db", "nested", "two.sql"), "commit")
	writeFile(t, filepath.Join(dir, "db", "readme.md"), "not sql")

	res, err := runCLI(t, dir, "render", "db")
	require.NoError(t, err)
	require.Equal(t, "COMMIT;\nBEGIN TRANSACTION;\n", res.stdout)
}

func TestRenderCommand_Dialects(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "test.sql"), "SELECT id FROM t LIMIT 5")

	_, err := runCLI(t, dir, "render", "test.sql")
	require.ErrorContains(t, err, "failed to render file: test.sql")
	require.ErrorContains(t, err, "LIMIT is not supported by mssql")

	res, err := runCLI(t, dir, "--dialect", "postgres", "render", "test.sql")
	require.NoError(t, err)
	require.Equal(t, "SELECT id\nFROM t\nLIMIT 5;\n", res.stdout)

	writeFile(t, filepath.Join(dir, consts.DefaultConfigFile), "dialect: postgres\nindent: \"\\t\"\n")
	writeFile(t, filepath.Join(dir, "nested.sql"), "SELECT id FROM (SELECT id FROM t) AS x")

	res, err = runCLI(t, dir, "render", "nested.sql")
	require.NoError(t, err)
	require.Equal(t, "SELECT id\nFROM (SELECT id\n\tFROM t) AS x;\n", res.stdout)

	res, err = runCLI(t, dir, "--indent", "  ", "render", "nested.sql")
	require.NoError(t, err)
	require.Equal(t, "SELECT id\nFROM (SELECT id\n  FROM t) AS x;\n", res.stdout)
}

func TestRenderCommand_GroupingParentheses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "test.sql"), "SELECT (a + b) * c FROM t WHERE (a = 1 OR b = 2) AND ((c = 3))")

	res, err := runCLI(t, dir, "render", "test.sql")
	require.NoError(t, err)
	require.Equal(t, "SELECT (a + b) * c\nFROM t\nWHERE (a = 1 OR b = 2) AND c = 3;\n", res.stdout)
}

func TestRenderCommand_ContinueOnError(t *testing.T) {
	dir := t.TempDir()
	src := "COMMIT; SELECT id FROM t LIMIT 5; ROLLBACK"
	writeFile(t, filepath.Join(dir, "test.sql"), src)

	t.Run("stdout keeps the statements that rendered", func(t *testing.T) {
		res, err := runCLI(t, dir, "--continue-on-error", "render", "test.sql")
		require.ErrorContains(t, err, "1 statement(s) could not be rendered")
		require.Equal(t, "COMMIT;\n\nROLLBACK;\n", res.stdout)
		require.Contains(t, res.stderr, "statement skipped")
		require.Contains(t, res.stderr, `"statement": 2`)
	})

	t.Run("files with skipped statements are not written", func(t *testing.T) {
		_, err := runCLI(t, dir, "--continue-on-error", "render", "-w", "test.sql")
		require.Error(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "test.sql"))
		require.NoError(t, err)
		require.Equal(t, src, string(content))
	})
}

func TestRenderCommand_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.sql"), "SELECT FROM WHERE")

	_, err := runCLI(t, dir, "render", "bad.sql")
	require.ErrorContains(t, err, "failed to render file: bad.sql")
	require.ErrorContains(t, err, "failed to parse SQL")
}

func TestRenderCommand_JSONLogs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "test.sql"), "COMMIT")

	res, err := runCLI(t, dir, "--log-level", "debug", "--log-format", "json", "render", "test.sql")
	require.NoError(t, err)
	require.Equal(t, "COMMIT;\n", res.stdout)

	lines := strings.Split(strings.TrimSpace(res.stderr), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], `"msg":"rendered"`)
	require.Contains(t, lines[0], `"dialect":"mssql"`)
	require.Contains(t, lines[0], `"file":"test.sql"`)
}
