package ast

// Query is a complete query: optional CTEs, a body and the row limiting
// clauses that apply to the whole body.
type Query struct {
	With    []Cte
	Body    SetExpr
	OrderBy []OrderByExpr
	Limit   Expr
	Offset  Expr
	Fetch   *Fetch
}

// Cte is a single common table expression: alias AS (query).
type Cte struct {
	Alias TableAlias
	Query *Query
}

// TableAlias names a table factor, optionally renaming its columns.
type TableAlias struct {
	Name    Ident
	Columns []Ident
}

// OrderByExpr is an ORDER BY item. A nil Asc means no direction was given.
type OrderByExpr struct {
	Expr Expr
	Asc  *bool
}

// Fetch is FETCH FIRST [quantity] [PERCENT] ROWS {ONLY | WITH TIES}.
type Fetch struct {
	WithTies bool
	Percent  bool
	Quantity Expr
}

// SetExpr is the body of a query.
type SetExpr interface {
	isSetExpr()
}

func (*Select) isSetExpr()       {}
func (*Query) isSetExpr()        {}
func (*SetOperation) isSetExpr() {}
func (*Values) isSetExpr()       {}

// SetOperation combines two bodies with UNION, INTERSECT or EXCEPT.
type SetOperation struct {
	Op    SetOperator
	All   bool
	Left  SetExpr
	Right SetExpr
}

// Values is a literal row list. Rows must not be empty.
type Values struct {
	Rows [][]Expr
}

type SetOperator int

const (
	Union SetOperator = iota + 1
	Intersect
	Except
)

// Select is a single SELECT block.
type Select struct {
	Distinct   bool
	Projection []SelectItem
	From       []TableWithJoins
	Selection  Expr
	GroupBy    []Expr
	Having     Expr
}

// SelectItem is one entry of a projection.
type SelectItem interface {
	isSelectItem()
}

type (
	UnnamedExpr struct {
		Expr Expr
	}

	ExprWithAlias struct {
		Expr  Expr
		Alias Ident
	}
)

func (*UnnamedExpr) isSelectItem()       {}
func (*ExprWithAlias) isSelectItem()     {}
func (*QualifiedWildcard) isSelectItem() {}
func (*Wildcard) isSelectItem()          {}

// TableWithJoins is one FROM entry.
type TableWithJoins struct {
	Relation TableFactor
	Joins    []Join
}

// TableFactor is a relation that can appear in FROM or a JOIN.
type TableFactor interface {
	isTableFactor()
}

type (
	// Table is a named relation. Args turns it into a table-valued function
	// call and WithHints holds table hints.
	Table struct {
		Name      ObjectName
		Alias     *TableAlias
		Args      []Expr
		WithHints []Expr
	}

	// Derived is a subquery used as a relation.
	Derived struct {
		Lateral  bool
		Subquery *Query
		Alias    *TableAlias
	}

	// NestedJoin is a parenthesized join tree.
	NestedJoin struct {
		TableWithJoins
	}
)

func (*Table) isTableFactor()      {}
func (*Derived) isTableFactor()    {}
func (*NestedJoin) isTableFactor() {}

type Join struct {
	Relation TableFactor
	Operator JoinOperator
}

// JoinOperator is the kind of a join plus its constraint. Inner and outer
// joins require a constraint, cross joins and applies must not carry one.
type JoinOperator struct {
	Kind       JoinKind
	Constraint JoinConstraint
}

type JoinKind int

const (
	InnerJoin JoinKind = iota + 1
	LeftOuterJoin
	RightOuterJoin
	FullOuterJoin
	CrossJoin
	CrossApply
	OuterApply
)

// Constrained reports whether joins of this kind need a JoinConstraint.
func (k JoinKind) Constrained() bool {
	switch k {
	case InnerJoin, LeftOuterJoin, RightOuterJoin, FullOuterJoin:
		return true
	default:
		return false
	}
}

// JoinConstraint is ON, USING or NATURAL.
type JoinConstraint interface {
	isJoinConstraint()
}

type (
	On struct {
		Expr Expr
	}

	Using struct {
		Columns []Ident
	}

	Natural struct{}
)

func (*On) isJoinConstraint()      {}
func (*Using) isJoinConstraint()   {}
func (*Natural) isJoinConstraint() {}

// Asc orders by e ascending.
func Asc(e Expr) OrderByExpr {
	asc := true
	return OrderByExpr{Expr: e, Asc: &asc}
}

// Desc orders by e descending.
func Desc(e Expr) OrderByExpr {
	asc := false
	return OrderByExpr{Expr: e, Asc: &asc}
}
