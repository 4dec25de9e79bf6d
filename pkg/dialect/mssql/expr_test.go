package mssql_test

import (
	"testing"

	"github.com/pseudomuto/sqlgen/pkg/ast"
	. "github.com/pseudomuto/sqlgen/pkg/dialect/mssql"
	"github.com/pseudomuto/sqlgen/pkg/writer"
	"github.com/stretchr/testify/require"
)

func TestWriteExpr(t *testing.T) {
	subquery := query(&ast.Select{
		Projection: items(id("user_id")),
		From:       []ast.TableWithJoins{table("orders")},
	})

	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"identifier", id("name"), "name"},
		{"wildcard", &ast.Wildcard{}, "*"},
		{"qualified wildcard", &ast.QualifiedWildcard{Name: ast.Name("dbo", "users")}, "dbo.users.*"},
		{"compound identifier", compound("u.name"), "u.name"},
		{"is null", &ast.IsNull{Expr: id("a")}, "a IS NULL"},
		{"is not null", &ast.IsNotNull{Expr: id("a")}, "a IS NOT NULL"},
		{
			"in list",
			&ast.InList{Expr: id("a"), List: []ast.Expr{num("1"), num("2"), num("3")}},
			"a IN (1, 2, 3)",
		},
		{
			"not in list",
			&ast.InList{Expr: id("a"), List: []ast.Expr{str("x")}, Negated: true},
			"a NOT IN ('x')",
		},
		{
			"in subquery",
			&ast.InSubquery{Expr: id("id"), Subquery: subquery},
			"id IN (SELECT user_id\n    FROM orders)",
		},
		{
			"not in subquery",
			&ast.InSubquery{Expr: id("id"), Subquery: subquery, Negated: true},
			"id NOT IN (SELECT user_id\n    FROM orders)",
		},
		{
			"between keeps low then high",
			&ast.Between{Expr: id("age"), Low: num("18"), High: num("65")},
			"age BETWEEN 18 AND 65",
		},
		{
			"not between",
			&ast.Between{Expr: id("age"), Negated: true, Low: num("18"), High: num("65")},
			"age NOT BETWEEN 18 AND 65",
		},
		{
			"between with arithmetic bounds",
			&ast.Between{Expr: id("x"), Low: binary(id("a"), ast.OpMinus, num("1")), High: binary(id("a"), ast.OpPlus, num("1"))},
			"x BETWEEN a - 1 AND a + 1",
		},
		{"binary", binary(id("a"), ast.OpGtEq, num("1")), "a >= 1"},
		{"not like", binary(id("name"), ast.OpNotLike, str("%x%")), "name NOT LIKE '%x%'"},
		{"plus", binary(id("a"), ast.OpPlus, id("b")), "a + b"},
		{"unary minus", &ast.UnaryOp{Op: ast.UnaryMinus, Expr: num("1")}, "- 1"},
		{"unary not", &ast.UnaryOp{Op: ast.UnaryNot, Expr: binary(id("a"), ast.OpEq, id("b"))}, "NOT a = b"},
		{"literal", &ast.Null{}, "NULL"},
		{
			"function",
			&ast.Function{Name: ast.Name("COUNT"), Args: []ast.Expr{&ast.Wildcard{}}},
			"COUNT(*)",
		},
		{
			"distinct function",
			&ast.Function{Name: ast.Name("COUNT"), Args: []ast.Expr{id("id")}, Distinct: true},
			"COUNT(DISTINCT id)",
		},
		{
			"qualified function without args",
			&ast.Function{Name: ast.Name("dbo", "now")},
			"dbo.now()",
		},
		{
			"exists",
			&ast.Exists{Query: subquery},
			"EXISTS (SELECT user_id\n    FROM orders)",
		},
		{
			"subquery",
			&ast.Subquery{Query: subquery},
			"(SELECT user_id\n    FROM orders)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireSQL(t, tt.want, func(w *Writer) error { return w.WriteExpr(tt.expr) })
		})
	}
}

func TestParenthesization(t *testing.T) {
	a, b, c := id("a"), id("b"), id("c")

	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{
			"left associative chain stays flat",
			binary(binary(a, ast.OpMinus, b), ast.OpMinus, c),
			"a - b - c",
		},
		{
			"right nested same precedence",
			binary(a, ast.OpMinus, binary(b, ast.OpMinus, c)),
			"a - (b - c)",
		},
		{
			"looser child",
			binary(binary(a, ast.OpPlus, b), ast.OpMultiply, c),
			"(a + b) * c",
		},
		{
			"tighter child",
			binary(a, ast.OpPlus, binary(b, ast.OpMultiply, c)),
			"a + b * c",
		},
		{
			"and under or",
			binary(binary(a, ast.OpAnd, b), ast.OpOr, c),
			"a AND b OR c",
		},
		{
			"or under and",
			binary(binary(a, ast.OpOr, b), ast.OpAnd, c),
			"(a OR b) AND c",
		},
		{
			"comparisons do not chain",
			binary(binary(a, ast.OpEq, b), ast.OpEq, c),
			"(a = b) = c",
		},
		{
			"not over and",
			&ast.UnaryOp{Op: ast.UnaryNot, Expr: binary(a, ast.OpAnd, b)},
			"NOT (a AND b)",
		},
		{
			"not inside and",
			binary(&ast.UnaryOp{Op: ast.UnaryNot, Expr: a}, ast.OpAnd, b),
			"NOT a AND b",
		},
		{
			"not inside comparison",
			binary(&ast.UnaryOp{Op: ast.UnaryNot, Expr: a}, ast.OpEq, b),
			"(NOT a) = b",
		},
		{
			"minus over sum",
			&ast.UnaryOp{Op: ast.UnaryMinus, Expr: binary(a, ast.OpPlus, b)},
			"- (a + b)",
		},
		{
			"predicate over comparison",
			&ast.IsNull{Expr: binary(a, ast.OpEq, b)},
			"(a = b) IS NULL",
		},
		{
			"predicate over arithmetic",
			&ast.IsNotNull{Expr: binary(a, ast.OpPlus, b)},
			"a + b IS NOT NULL",
		},
		{
			"between bound with and",
			&ast.Between{Expr: a, Low: b, High: binary(b, ast.OpAnd, c)},
			"a BETWEEN b AND (b AND c)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireSQL(t, tt.want, func(w *Writer) error { return w.WriteExpr(tt.expr) })
		})
	}
}

func TestWriteExprUnsupported(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
	}{
		{"case", &ast.Case{Conditions: []ast.Expr{id("a")}, Results: []ast.Expr{num("1")}}},
		{"cast", &ast.Cast{Expr: id("a"), DataType: ast.Type(ast.IntType)}},
		{"extract", &ast.Extract{Field: ast.Year, Expr: id("d")}},
		{"collate", &ast.Collate{Expr: id("a"), Collation: ast.Name("Latin1_General_CI_AS")}},
		{"nested", &ast.Nested{Expr: id("a")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render(func(w *Writer) error { return w.WriteExpr(tt.expr) })
			require.ErrorIs(t, err, writer.ErrUnsupported)
			require.Empty(t, got)

			var u *writer.UnsupportedConstructError
			require.ErrorAs(t, err, &u)
			require.Equal(t, Dialect, u.Dialect)
		})
	}

	t.Run("inside a projection", func(t *testing.T) {
		sel := &ast.Select{
			Projection: items(id("a"), &ast.Case{Conditions: []ast.Expr{id("b")}, Results: []ast.Expr{num("1")}}),
		}

		got, err := render(func(w *Writer) error { return w.WriteSelect(sel) })
		require.ErrorIs(t, err, writer.ErrUnsupported)
		require.Equal(t, "SELECT a, ", got)
	})
}

func TestWriteExprMalformed(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
	}{
		{"nil", nil},
		{"between without low", &ast.Between{Expr: id("a"), High: num("1")}},
		{"between without high", &ast.Between{Expr: id("a"), Low: num("1")}},
		{"empty in list", &ast.InList{Expr: id("a")}},
		{"in without subquery", &ast.InSubquery{Expr: id("a")}},
		{"binary without operand", &ast.BinaryOp{Left: id("a"), Op: ast.OpEq}},
		{"unary without operand", &ast.UnaryOp{Op: ast.UnaryNot}},
		{"empty compound identifier", &ast.CompoundIdentifier{}},
		{"exists without query", &ast.Exists{}},
		{"function without name", &ast.Function{}},
		{
			"interval fractional precision without last field",
			&ast.Interval{Value: "1", LeadingField: ast.Second, FractionalSecondsPrecision: ast.Uint(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render(func(w *Writer) error { return w.WriteExpr(tt.expr) })
			require.ErrorIs(t, err, writer.ErrMalformed)
			require.Empty(t, got)
		})
	}
}

func TestUnknownOperators(t *testing.T) {
	got, err := render(func(w *Writer) error {
		return w.WriteExpr(binary(id("a"), ast.BinaryOperator(99), id("b")))
	})
	require.ErrorIs(t, err, writer.ErrUnsupported)
	require.Empty(t, got)

	_, err = render(func(w *Writer) error { return w.WriteUnaryOperator(ast.UnaryOperator(0)) })
	require.ErrorIs(t, err, writer.ErrUnsupported)

	unknownField := ast.DateTimeField(99)
	for _, iv := range []*ast.Interval{
		{Value: "1", LeadingField: unknownField},
		{Value: "1", LeadingField: ast.Day, LastField: &unknownField},
	} {
		_, err = render(func(w *Writer) error { return w.WriteValue(iv) })
		require.ErrorIs(t, err, writer.ErrUnsupported)
		require.ErrorContains(t, err, "date-time field 99")
	}

	requireSQL(t, "%", func(w *Writer) error { return w.WriteBinaryOperator(ast.OpModulus) })
	requireSQL(t, "NOT", func(w *Writer) error { return w.WriteUnaryOperator(ast.UnaryNot) })
	requireSQL(t, "MINUTE", func(w *Writer) error { return w.WriteDateTimeField(ast.Minute) })
}

func TestWriteValue(t *testing.T) {
	second := ast.Second

	tests := []struct {
		name  string
		value ast.Value
		want  string
	}{
		{"interval", &ast.Interval{Value: "1", LeadingField: ast.Year}, "INTERVAL '1' YEAR"},
		{"interval precision", &ast.Interval{Value: "1", LeadingField: ast.Year, LeadingPrecision: ast.Uint(2)}, "INTERVAL '1' YEAR(2)"},
		{
			"interval range",
			&ast.Interval{Value: "10:30", LeadingField: ast.Minute, LastField: &second, FractionalSecondsPrecision: ast.Uint(2)},
			"INTERVAL '10:30' MINUTE TO SECOND(2)",
		},
		{"boolean", &ast.Boolean{Value: true}, "true"},
		{"string", &ast.SingleQuotedString{Value: "O'Brien"}, "'O''Brien'"},
		{"national", &ast.NationalString{Value: "abc"}, "n'abc'"},
		{"hex", &ast.HexString{Value: "0AFF"}, "X'0AFF'"},
		{"date", &ast.Date{Value: "2024-01-31"}, "'2024-01-31'"},
		{"number", &ast.Number{Value: "3.14"}, "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireSQL(t, tt.want, func(w *Writer) error { return w.WriteValue(tt.value) })
		})
	}
}

func TestWriteObjectName(t *testing.T) {
	requireSQL(t, "schema.table", func(w *Writer) error {
		return w.WriteObjectName(ast.Name("schema", "table"))
	})
	requireSQL(t, "db.schema.table", func(w *Writer) error {
		return w.WriteObjectName(ast.Name("db", "schema", "table"))
	})

	_, err := render(func(w *Writer) error { return w.WriteObjectName(nil) })
	require.ErrorIs(t, err, writer.ErrMalformed)
}

func TestWindowFunctions(t *testing.T) {
	rowNumber := func(spec *ast.WindowSpec) ast.Expr {
		return &ast.Function{Name: ast.Name("ROW_NUMBER"), Over: spec}
	}

	t.Run("partition and order", func(t *testing.T) {
		requireSQL(t, "ROW_NUMBER() OVER (PARTITION BY dept ORDER BY salary DESC)", func(w *Writer) error {
			return w.WriteExpr(rowNumber(&ast.WindowSpec{
				PartitionBy: []ast.Expr{id("dept")},
				OrderBy:     []ast.OrderByExpr{ast.Desc(id("salary"))},
			}))
		})
	})

	t.Run("empty spec", func(t *testing.T) {
		requireSQL(t, "ROW_NUMBER() OVER ()", func(w *Writer) error {
			return w.WriteExpr(rowNumber(&ast.WindowSpec{}))
		})
	})

	t.Run("rows frame", func(t *testing.T) {
		end := ast.WindowFrameBound{Kind: ast.CurrentRow}
		requireSQL(t, "SUM(x) OVER (ORDER BY d ROWS BETWEEN 2 PRECEDING AND CURRENT ROW)", func(w *Writer) error {
			return w.WriteExpr(&ast.Function{
				Name: ast.Name("SUM"),
				Args: []ast.Expr{id("x")},
				Over: &ast.WindowSpec{
					OrderBy: []ast.OrderByExpr{{Expr: id("d")}},
					WindowFrame: &ast.WindowFrame{
						Units:      ast.Rows,
						StartBound: ast.WindowFrameBound{Kind: ast.Preceding, Offset: ast.Uint(2)},
						EndBound:   &end,
					},
				},
			})
		})
	})

	t.Run("single bound", func(t *testing.T) {
		requireSQL(t, "RANGE UNBOUNDED PRECEDING", func(w *Writer) error {
			return w.WriteWindowFrame(&ast.WindowFrame{
				Units:      ast.Range,
				StartBound: ast.WindowFrameBound{Kind: ast.Preceding},
			})
		})
	})

	t.Run("range with offset", func(t *testing.T) {
		got, err := render(func(w *Writer) error {
			return w.WriteWindowFrame(&ast.WindowFrame{
				Units:      ast.Range,
				StartBound: ast.WindowFrameBound{Kind: ast.Preceding, Offset: ast.Uint(1)},
			})
		})
		require.ErrorIs(t, err, writer.ErrUnsupported)
		require.Empty(t, got)
	})

	t.Run("groups", func(t *testing.T) {
		_, err := render(func(w *Writer) error { return w.WriteWindowFrameUnits(ast.Groups) })
		require.ErrorIs(t, err, writer.ErrUnsupported)
	})

	t.Run("following", func(t *testing.T) {
		requireSQL(t, "UNBOUNDED FOLLOWING", func(w *Writer) error {
			return w.WriteWindowFrameBound(ast.WindowFrameBound{Kind: ast.Following})
		})
		requireSQL(t, "3 FOLLOWING", func(w *Writer) error {
			return w.WriteWindowFrameBound(ast.WindowFrameBound{Kind: ast.Following, Offset: ast.Uint(3)})
		})
	})
}
