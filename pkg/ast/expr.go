package ast

// Expr is any scalar expression. Every Value is also an Expr.
type Expr interface {
	isExpr()
}

func (*Identifier) isExpr()         {}
func (*Wildcard) isExpr()           {}
func (*QualifiedWildcard) isExpr()  {}
func (*CompoundIdentifier) isExpr() {}
func (*IsNull) isExpr()             {}
func (*IsNotNull) isExpr()          {}
func (*InList) isExpr()             {}
func (*InSubquery) isExpr()         {}
func (*Between) isExpr()            {}
func (*BinaryOp) isExpr()           {}
func (*UnaryOp) isExpr()            {}
func (*Cast) isExpr()               {}
func (*Extract) isExpr()            {}
func (*Collate) isExpr()            {}
func (*Nested) isExpr()             {}
func (*Function) isExpr()           {}
func (*Case) isExpr()               {}
func (*Exists) isExpr()             {}
func (*Subquery) isExpr()           {}

type (
	Identifier struct {
		Value Ident
	}

	// Wildcard is an unqualified *.
	Wildcard struct{}

	// QualifiedWildcard is table.* (or schema.table.*).
	QualifiedWildcard struct {
		Name ObjectName
	}

	CompoundIdentifier struct {
		Parts []Ident
	}

	IsNull struct {
		Expr Expr
	}

	IsNotNull struct {
		Expr Expr
	}

	InList struct {
		Expr    Expr
		List    []Expr
		Negated bool
	}

	InSubquery struct {
		Expr     Expr
		Subquery *Query
		Negated  bool
	}

	// Between is expr [NOT] BETWEEN low AND high.
	Between struct {
		Expr    Expr
		Negated bool
		Low     Expr
		High    Expr
	}

	BinaryOp struct {
		Left  Expr
		Op    BinaryOperator
		Right Expr
	}

	UnaryOp struct {
		Op   UnaryOperator
		Expr Expr
	}

	Cast struct {
		Expr     Expr
		DataType DataType
	}

	Extract struct {
		Field DateTimeField
		Expr  Expr
	}

	Collate struct {
		Expr      Expr
		Collation ObjectName
	}

	// Nested is an explicitly parenthesized expression.
	Nested struct {
		Expr Expr
	}

	Function struct {
		Name     ObjectName
		Args     []Expr
		Over     *WindowSpec
		Distinct bool
	}

	// Case is CASE [operand] WHEN c THEN r ... [ELSE e] END. Conditions and
	// Results are parallel and must have the same length.
	Case struct {
		Operand    Expr
		Conditions []Expr
		Results    []Expr
		ElseResult Expr
	}

	Exists struct {
		Query *Query
	}

	Subquery struct {
		Query *Query
	}
)

type BinaryOperator int

const (
	OpAnd BinaryOperator = iota + 1
	OpOr
	OpEq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
	OpNotEq
	OpLike
	OpNotLike
	OpPlus
	OpMinus
	OpMultiply
	OpDivide
	OpModulus
)

// BinaryOperators lists every binary operator.
var BinaryOperators = []BinaryOperator{
	OpAnd, OpOr, OpEq, OpGt, OpGtEq, OpLt, OpLtEq, OpNotEq,
	OpLike, OpNotLike, OpPlus, OpMinus, OpMultiply, OpDivide, OpModulus,
}

type UnaryOperator int

const (
	UnaryMinus UnaryOperator = iota + 1
	UnaryNot
	UnaryPlus
)

// UnaryOperators lists every unary operator.
var UnaryOperators = []UnaryOperator{UnaryMinus, UnaryNot, UnaryPlus}

type DateTimeField int

const (
	Year DateTimeField = iota + 1
	Month
	Day
	Hour
	Minute
	Second
)

// DateTimeFields lists every date-time field.
var DateTimeFields = []DateTimeField{Year, Month, Day, Hour, Minute, Second}

// WindowSpec is the body of an OVER clause.
type WindowSpec struct {
	PartitionBy []Expr
	OrderBy     []OrderByExpr
	WindowFrame *WindowFrame
}

// WindowFrame is units BETWEEN start AND end, or units start when EndBound
// is nil.
type WindowFrame struct {
	Units      WindowFrameUnits
	StartBound WindowFrameBound
	EndBound   *WindowFrameBound
}

type WindowFrameUnits int

const (
	Rows WindowFrameUnits = iota + 1
	Range
	Groups
)

// WindowFrameBound is CURRENT ROW, or [n | UNBOUNDED] {PRECEDING | FOLLOWING}.
// A nil Offset means UNBOUNDED.
type WindowFrameBound struct {
	Kind   BoundKind
	Offset *uint64
}

type BoundKind int

const (
	CurrentRow BoundKind = iota + 1
	Preceding
	Following
)
