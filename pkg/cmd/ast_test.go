package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestASTCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "q.sql"), "SELECT id FROM users; COMMIT AND CHAIN")

	res, err := runCLI(t, dir, "ast", "q.sql")
	require.NoError(t, err)

	require.Contains(t, res.stdout, "-- q.sql:1\n(*ast.Query)")
	require.Contains(t, res.stdout, "(*ast.Select)")
	require.Contains(t, res.stdout, `(ast.Ident) (len=5) "users"`)
	require.Contains(t, res.stdout, "-- q.sql:2\n(*ast.Commit)")
	require.Contains(t, res.stdout, "Chain: (bool) true")
	require.NotContains(t, res.stdout, "0x", "pointer addresses are omitted")
}

func TestASTCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.sql"), "DROP")

	_, err := runCLI(t, dir, "ast")
	require.ErrorContains(t, err, "exactly one path argument is required")

	_, err = runCLI(t, dir, "ast", "bad.sql")
	require.ErrorContains(t, err, "failed to parse file: bad.sql")

	_, err = runCLI(t, dir, "ast", "missing.sql")
	require.ErrorContains(t, err, "failed to access path")
}
