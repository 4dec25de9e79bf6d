package lexicon_test

import (
	"testing"

	"github.com/pseudomuto/sqlgen/pkg/ast"
	. "github.com/pseudomuto/sqlgen/pkg/lexicon"
	"github.com/stretchr/testify/require"
)

func TestOperatorTablesAreTotal(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range ast.BinaryOperators {
		tok, ok := BinaryOperator(op)
		require.True(t, ok, "binary operator %d", op)
		require.NotEmpty(t, tok)
		require.False(t, seen[tok], "duplicate token %q", tok)
		seen[tok] = true
	}

	for _, op := range ast.UnaryOperators {
		tok, ok := UnaryOperator(op)
		require.True(t, ok, "unary operator %d", op)
		require.NotEmpty(t, tok)
	}

	for _, f := range ast.DateTimeFields {
		kw, ok := DateTimeField(f)
		require.True(t, ok)
		require.NotEmpty(t, kw)
	}

	_, ok := BinaryOperator(ast.BinaryOperator(0))
	require.False(t, ok)
}

func TestOperatorTokens(t *testing.T) {
	tests := map[ast.BinaryOperator]string{
		ast.OpAnd:      "AND",
		ast.OpOr:       "OR",
		ast.OpEq:       "=",
		ast.OpGt:       ">",
		ast.OpGtEq:     ">=",
		ast.OpLt:       "<",
		ast.OpLtEq:     "<=",
		ast.OpNotEq:    "!=",
		ast.OpLike:     "LIKE",
		ast.OpNotLike:  "NOT LIKE",
		ast.OpPlus:     "+",
		ast.OpMinus:    "-",
		ast.OpMultiply: "*",
		ast.OpDivide:   "/",
		ast.OpModulus:  "%",
	}

	for op, want := range tests {
		got, _ := BinaryOperator(op)
		require.Equal(t, want, got)
	}

	minus, _ := UnaryOperator(ast.UnaryMinus)
	not, _ := UnaryOperator(ast.UnaryNot)
	plus, _ := UnaryOperator(ast.UnaryPlus)
	require.Equal(t, []string{"-", "NOT", "+"}, []string{minus, not, plus})
}

func TestPrecedence(t *testing.T) {
	require.Less(t, BinaryPrecedence(ast.OpOr), BinaryPrecedence(ast.OpAnd))
	require.Less(t, BinaryPrecedence(ast.OpAnd), UnaryPrecedence(ast.UnaryNot))
	require.Less(t, UnaryPrecedence(ast.UnaryNot), BinaryPrecedence(ast.OpEq))
	require.Less(t, BinaryPrecedence(ast.OpEq), BinaryPrecedence(ast.OpPlus))
	require.Less(t, BinaryPrecedence(ast.OpPlus), BinaryPrecedence(ast.OpMultiply))
	require.Less(t, BinaryPrecedence(ast.OpMultiply), UnaryPrecedence(ast.UnaryMinus))

	require.True(t, Associative(ast.OpPlus))
	require.False(t, Associative(ast.OpLike))

	require.Equal(t, PrecedenceComparison, Precedence(&ast.IsNull{}))
	require.Equal(t, PrecedenceAtom, Precedence(&ast.Identifier{Value: "a"}))
	require.Equal(t, PrecedenceAtom, Precedence(&ast.Nested{}))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name  string
		value ast.Value
		want  string
	}{
		{"true", &ast.Boolean{Value: true}, "true"},
		{"false", &ast.Boolean{Value: false}, "false"},
		{"number", &ast.Number{Value: "1.50e3"}, "1.50e3"},
		{"string", &ast.SingleQuotedString{Value: "hello"}, "'hello'"},
		{"escaped string", &ast.SingleQuotedString{Value: "it's"}, "'it''s'"},
		{"date", &ast.Date{Value: "2020-01-01"}, "'2020-01-01'"},
		{"time", &ast.Time{Value: "12:00:00"}, "'12:00:00'"},
		{"timestamp", &ast.Timestamp{Value: "2020-01-01 12:00:00"}, "'2020-01-01 12:00:00'"},
		{"hex", &ast.HexString{Value: "DEADBEEF"}, "X'DEADBEEF'"},
		{"national", &ast.NationalString{Value: "héllo"}, "n'héllo'"},
		{"null", &ast.Null{}, "NULL"},
		{"interval", &ast.Interval{Value: "1", LeadingField: ast.Year}, "INTERVAL '1' YEAR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Literal(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInterval(t *testing.T) {
	second := ast.Second
	year := ast.Year

	tests := []struct {
		name     string
		interval *ast.Interval
		want     string
	}{
		{
			name:     "leading field only",
			interval: &ast.Interval{Value: "1", LeadingField: ast.Year},
			want:     "INTERVAL '1' YEAR",
		},
		{
			name:     "leading precision",
			interval: &ast.Interval{Value: "1", LeadingField: ast.Year, LeadingPrecision: ast.Uint(2)},
			want:     "INTERVAL '1' YEAR(2)",
		},
		{
			name:     "last field",
			interval: &ast.Interval{Value: "1-2", LeadingField: ast.Year, LastField: &year},
			want:     "INTERVAL '1-2' YEAR TO YEAR",
		},
		{
			name: "everything",
			interval: &ast.Interval{
				Value:                      "1 01:01:01.01",
				LeadingField:               ast.Day,
				LeadingPrecision:           ast.Uint(2),
				LastField:                  &second,
				FractionalSecondsPrecision: ast.Uint(3),
			},
			want: "INTERVAL '1 01:01:01.01' DAY(2) TO SECOND(3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interval(tt.interval)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := Interval(&ast.Interval{Value: "1"})
	require.ErrorIs(t, err, ErrUnknownValue)

	last := ast.DateTimeField(99)
	_, err = Interval(&ast.Interval{Value: "1", LeadingField: ast.Day, LastField: &last})
	require.ErrorIs(t, err, ErrUnknownValue)
	require.ErrorContains(t, err, "interval last field 99")
}

func TestKeywords(t *testing.T) {
	kw, ok := JoinKeyword(ast.LeftOuterJoin)
	require.True(t, ok)
	require.Equal(t, "LEFT OUTER JOIN ", kw)

	kw, _ = IsolationLevel(ast.RepeatableRead)
	require.Equal(t, "REPEATABLE READ", kw)

	kw, _ = AccessMode(ast.ReadOnly)
	require.Equal(t, "READ ONLY", kw)

	kw, _ = ObjectType(ast.ViewObject)
	require.Equal(t, "VIEW", kw)

	kw, _ = FileFormat(ast.Parquet)
	require.Equal(t, "PARQUET", kw)

	kw, _ = WindowFrameUnits(ast.Groups)
	require.Equal(t, "GROUPS", kw)

	_, ok = SetOperator(ast.SetOperator(42))
	require.False(t, ok)
}

func TestQuote(t *testing.T) {
	require.Equal(t, "''", Quote(""))
	require.Equal(t, "''''", Quote("'"))
	require.Equal(t, "'a''b''c'", Quote("a'b'c"))
}
