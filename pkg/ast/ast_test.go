package ast_test

import (
	"testing"

	. "github.com/pseudomuto/sqlgen/pkg/ast"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	require.Equal(t, ObjectName{"schema", "table"}, Name("schema", "table"))
	require.Equal(t, "schema.table", Name("schema", "table").String())
	require.Equal(t, "users", Name("users").String())
	require.Empty(t, Name().String())
}

func TestJoinKindConstrained(t *testing.T) {
	tests := map[JoinKind]bool{
		InnerJoin:      true,
		LeftOuterJoin:  true,
		RightOuterJoin: true,
		FullOuterJoin:  true,
		CrossJoin:      false,
		CrossApply:     false,
		OuterApply:     false,
	}

	for kind, want := range tests {
		require.Equal(t, want, kind.Constrained(), "kind %d", kind)
	}
}

func TestOrderHelpers(t *testing.T) {
	id := Ident("id").Expr()

	asc := Asc(id)
	require.NotNil(t, asc.Asc)
	require.True(t, *asc.Asc)
	require.Same(t, id, asc.Expr)

	desc := Desc(id)
	require.NotNil(t, desc.Asc)
	require.False(t, *desc.Asc)
}

func TestSealedCategories(t *testing.T) {
	// values double as expressions and SET right-hand sides
	var v Value = &Number{Value: "1"}
	var _ Expr = v
	var _ SetVariableValue = v
	var _ SetVariableValue = Ident("DEFAULT")

	// wildcards are both projection items and expressions
	var _ SelectItem = &Wildcard{}
	var _ Expr = &Wildcard{}
	var _ SelectItem = &QualifiedWildcard{Name: Name("t")}

	var _ TransactionMode = ReadOnly
	var _ TransactionMode = Serializable

	require.Equal(t, uint64(3), *Uint(3))
	require.Equal(t, DataType{Kind: IntType}, Type(IntType))
}
