package mssql_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pseudomuto/sqlgen/pkg/ast"
	. "github.com/pseudomuto/sqlgen/pkg/dialect/mssql"
	"github.com/stretchr/testify/require"
)

func render(fn func(w *Writer) error) (string, error) {
	var buf bytes.Buffer
	err := fn(New("    ", &buf))
	return buf.String(), err
}

func requireSQL(t *testing.T, want string, fn func(w *Writer) error) {
	t.Helper()
	got, err := render(fn)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func id(name string) ast.Expr {
	return &ast.Identifier{Value: ast.Ident(name)}
}

func compound(name string) ast.Expr {
	parts := strings.Split(name, ".")
	idents := make([]ast.Ident, len(parts))
	for i, p := range parts {
		idents[i] = ast.Ident(p)
	}
	return &ast.CompoundIdentifier{Parts: idents}
}

func num(v string) ast.Expr {
	return &ast.Number{Value: v}
}

func str(v string) ast.Expr {
	return &ast.SingleQuotedString{Value: v}
}

func binary(left ast.Expr, op ast.BinaryOperator, right ast.Expr) ast.Expr {
	return &ast.BinaryOp{Left: left, Op: op, Right: right}
}

func items(exprs ...ast.Expr) []ast.SelectItem {
	out := make([]ast.SelectItem, len(exprs))
	for i, e := range exprs {
		out[i] = &ast.UnnamedExpr{Expr: e}
	}
	return out
}

func table(name string) ast.TableWithJoins {
	return ast.TableWithJoins{Relation: &ast.Table{Name: ast.Name(strings.Split(name, ".")...)}}
}

func query(s *ast.Select) *ast.Query {
	return &ast.Query{Body: s}
}
