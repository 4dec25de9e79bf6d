package lexicon

import "github.com/pseudomuto/sqlgen/pkg/ast"

var binaryOperators = map[ast.BinaryOperator]string{
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

var unaryOperators = map[ast.UnaryOperator]string{
	ast.UnaryMinus: "-",
	ast.UnaryNot:   "NOT",
	ast.UnaryPlus:  "+",
}

var setOperators = map[ast.SetOperator]string{
	ast.Union:     "UNION",
	ast.Intersect: "INTERSECT",
	ast.Except:    "EXCEPT",
}

// BinaryOperator returns the token for op.
func BinaryOperator(op ast.BinaryOperator) (string, bool) {
	tok, ok := binaryOperators[op]
	return tok, ok
}

// UnaryOperator returns the token for op.
func UnaryOperator(op ast.UnaryOperator) (string, bool) {
	tok, ok := unaryOperators[op]
	return tok, ok
}

// SetOperator returns the keyword for op.
func SetOperator(op ast.SetOperator) (string, bool) {
	tok, ok := setOperators[op]
	return tok, ok
}

// Binding strengths, loosest first.
const (
	PrecedenceOr         = 5
	PrecedenceAnd        = 10
	PrecedenceNot        = 15
	PrecedenceComparison = 20
	PrecedenceAdditive   = 30
	PrecedenceMultiply   = 40
	PrecedenceSign       = 50
	PrecedenceAtom       = 100
)

// BinaryPrecedence is the binding strength of op.
func BinaryPrecedence(op ast.BinaryOperator) int {
	switch op {
	case ast.OpOr:
		return PrecedenceOr
	case ast.OpAnd:
		return PrecedenceAnd
	case ast.OpPlus, ast.OpMinus:
		return PrecedenceAdditive
	case ast.OpMultiply, ast.OpDivide, ast.OpModulus:
		return PrecedenceMultiply
	default:
		return PrecedenceComparison
	}
}

// UnaryPrecedence is the binding strength of op.
func UnaryPrecedence(op ast.UnaryOperator) int {
	if op == ast.UnaryNot {
		return PrecedenceNot
	}
	return PrecedenceSign
}

// Associative reports whether a chain of op may be written without
// parentheses around its left operand.
func Associative(op ast.BinaryOperator) bool {
	return BinaryPrecedence(op) != PrecedenceComparison
}

// Precedence is the binding strength of e as an operand. Predicates (IS NULL,
// IN, BETWEEN) bind like comparisons and everything that is not an operator
// binds tightest.
func Precedence(e ast.Expr) int {
	switch e := e.(type) {
	case *ast.BinaryOp:
		return BinaryPrecedence(e.Op)
	case *ast.UnaryOp:
		return UnaryPrecedence(e.Op)
	case *ast.IsNull, *ast.IsNotNull, *ast.InList, *ast.InSubquery, *ast.Between:
		return PrecedenceComparison
	case *ast.Collate:
		return PrecedenceSign
	default:
		return PrecedenceAtom
	}
}
