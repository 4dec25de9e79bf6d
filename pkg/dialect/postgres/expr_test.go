package postgres_test

import (
	"testing"

	"github.com/pseudomuto/sqlgen/pkg/ast"
	. "github.com/pseudomuto/sqlgen/pkg/dialect/postgres"
	"github.com/pseudomuto/sqlgen/pkg/writer"
	"github.com/stretchr/testify/require"
)

func TestWriteExpr(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{
			name: "searched case",
			expr: &ast.Case{
				Conditions: []ast.Expr{binary(id("x"), ast.OpGt, num("0")), binary(id("x"), ast.OpLt, num("0"))},
				Results:    []ast.Expr{str("pos"), str("neg")},
				ElseResult: str("zero"),
			},
			want: "CASE WHEN x > 0 THEN 'pos' WHEN x < 0 THEN 'neg' ELSE 'zero' END",
		},
		{
			name: "simple case",
			expr: &ast.Case{
				Operand:    id("status"),
				Conditions: []ast.Expr{num("1")},
				Results:    []ast.Expr{str("active")},
			},
			want: "CASE status WHEN 1 THEN 'active' END",
		},
		{
			name: "cast",
			expr: &ast.Cast{Expr: id("price"), DataType: ast.DataType{Kind: ast.DecimalType, Precision: ast.Uint(10), Scale: ast.Uint(2)}},
			want: "CAST(price AS NUMERIC(10, 2))",
		},
		{
			name: "extract",
			expr: &ast.Extract{Field: ast.Year, Expr: id("created_at")},
			want: "EXTRACT(YEAR FROM created_at)",
		},
		{
			name: "collate",
			expr: &ast.Collate{Expr: id("name"), Collation: ast.Name("C")},
			want: "name COLLATE C",
		},
		{
			name: "collate over a binary operation",
			expr: &ast.Collate{Expr: binary(id("a"), ast.OpPlus, id("b")), Collation: ast.Name("C")},
			want: "(a + b) COLLATE C",
		},
		{
			name: "nested",
			expr: &ast.Nested{Expr: binary(id("a"), ast.OpPlus, id("b"))},
			want: "(a + b)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireSQL(t, tt.want, func(w *Writer) error { return w.WriteExpr(tt.expr) })
		})
	}
}

func TestWriteExprMalformed(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
	}{
		{"case without branches", &ast.Case{ElseResult: num("1")}},
		{"case with uneven branches", &ast.Case{Conditions: []ast.Expr{id("a")}, Results: []ast.Expr{}}},
		{"cast without operand", &ast.Cast{DataType: ast.Type(ast.IntType)}},
		{"extract without operand", &ast.Extract{Field: ast.Month}},
		{"collate without collation", &ast.Collate{Expr: id("a")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render(func(w *Writer) error { return w.WriteExpr(tt.expr) })
			require.ErrorIs(t, err, writer.ErrMalformed)
			require.Empty(t, got)
		})
	}
}

func TestWindowFrames(t *testing.T) {
	t.Run("range with offset", func(t *testing.T) {
		requireSQL(t, "RANGE 1 PRECEDING", func(w *Writer) error {
			return w.WriteWindowFrame(&ast.WindowFrame{
				Units:      ast.Range,
				StartBound: ast.WindowFrameBound{Kind: ast.Preceding, Offset: ast.Uint(1)},
			})
		})
	})

	t.Run("groups", func(t *testing.T) {
		end := ast.WindowFrameBound{Kind: ast.Following, Offset: ast.Uint(1)}
		requireSQL(t, "GROUPS BETWEEN CURRENT ROW AND 1 FOLLOWING", func(w *Writer) error {
			return w.WriteWindowFrame(&ast.WindowFrame{
				Units:      ast.Groups,
				StartBound: ast.WindowFrameBound{Kind: ast.CurrentRow},
				EndBound:   &end,
			})
		})
	})
}

func TestWriteValue(t *testing.T) {
	requireSQL(t, "INTERVAL '1' DAY", func(w *Writer) error {
		return w.WriteValue(&ast.Interval{Value: "1", LeadingField: ast.Day})
	})
	requireSQL(t, "true", func(w *Writer) error {
		return w.WriteValue(&ast.Boolean{Value: true})
	})

	t.Run("unknown interval field", func(t *testing.T) {
		field := ast.DateTimeField(99)
		got, err := render(func(w *Writer) error {
			return w.WriteValue(&ast.Interval{Value: "1", LeadingField: ast.Day, LastField: &field})
		})
		require.ErrorIs(t, err, writer.ErrUnsupported)
		require.NotErrorIs(t, err, writer.ErrMalformed)
		require.Empty(t, got)
	})
}
