package parser

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/ast"
)

type (
	// Expression is the root of the expression grammar. Precedence levels,
	// lowest first: OR, AND, NOT, predicates and comparisons, + and -,
	// * / %, unary signs, COLLATE, primaries.
	Expression struct {
		Or *OrExpression `parser:"@@"`
	}

	OrExpression struct {
		Left *AndExpression   `parser:"@@"`
		Rest []*AndExpression `parser:"('OR' @@)*"`
	}

	AndExpression struct {
		Left *NotExpression   `parser:"@@"`
		Rest []*NotExpression `parser:"('AND' @@)*"`
	}

	NotExpression struct {
		Not       *NotExpression `parser:"  'NOT' @@"`
		Predicate *Predicate     `parser:"| @@"`
	}

	Predicate struct {
		Left    *Additive    `parser:"@@"`
		Compare *Comparison  `parser:"( @@"`
		IsNull  *IsNullTail  `parser:"| @@"`
		Between *BetweenTail `parser:"| @@"`
		In      *InTail      `parser:"| @@"`
		Like    *LikeTail    `parser:"| @@ )?"`
	}

	Comparison struct {
		Op    string    `parser:"@('=' | '<>' | '!=' | '<=' | '>=' | '<' | '>')"`
		Right *Additive `parser:"@@"`
	}

	IsNullTail struct {
		Not bool `parser:"'IS' @'NOT'? 'NULL'"`
	}

	BetweenTail struct {
		Not  bool      `parser:"@'NOT'? 'BETWEEN'"`
		Low  *Additive `parser:"@@"`
		High *Additive `parser:"'AND' @@"`
	}

	InTail struct {
		Not      bool          `parser:"@'NOT'? 'IN' '('"`
		Subquery *Query        `parser:"( @@"`
		List     []*Expression `parser:"| @@ (',' @@)* ) ')'"`
	}

	LikeTail struct {
		Not     bool      `parser:"@'NOT'? 'LIKE'"`
		Pattern *Additive `parser:"@@"`
	}

	Additive struct {
		Left *Term          `parser:"@@"`
		Rest []*AdditiveRest `parser:"@@*"`
	}

	AdditiveRest struct {
		Op    string `parser:"@('+' | '-')"`
		Right *Term  `parser:"@@"`
	}

	Term struct {
		Left *Unary      `parser:"@@"`
		Rest []*TermRest `parser:"@@*"`
	}

	TermRest struct {
		Op    string `parser:"@('*' | '/' | '%')"`
		Right *Unary `parser:"@@"`
	}

	Unary struct {
		Sign    string   `parser:"  @('-' | '+')"`
		Operand *Unary   `parser:"  @@"`
		Postfix *Postfix `parser:"| @@"`
	}

	Postfix struct {
		Primary   *Primary    `parser:"@@"`
		Collation *ObjectName `parser:"('COLLATE' @@)?"`
	}

	Primary struct {
		Case     *CaseExpression    `parser:"  @@"`
		Cast     *CastExpression    `parser:"| @@"`
		Extract  *ExtractExpression `parser:"| @@"`
		Exists   *Query             `parser:"| 'EXISTS' '(' @@ ')'"`
		Interval *IntervalLiteral   `parser:"| @@"`
		Literal  *Literal           `parser:"| @@"`
		Subquery *Query             `parser:"| '(' @@ ')'"`
		Nested   *Expression        `parser:"| '(' @@ ')'"`
		Ref      *Reference         `parser:"| @@"`
	}

	CaseExpression struct {
		Operand *Expression   `parser:"'CASE' @@?"`
		Whens   []*WhenClause `parser:"@@+"`
		Else    *Expression   `parser:"('ELSE' @@)? 'END'"`
	}

	WhenClause struct {
		Condition *Expression `parser:"'WHEN' @@"`
		Result    *Expression `parser:"'THEN' @@"`
	}

	CastExpression struct {
		Expr *Expression `parser:"'CAST' '(' @@"`
		Type *DataType   `parser:"'AS' @@ ')'"`
	}

	ExtractExpression struct {
		Field string      `parser:"'EXTRACT' '(' @('YEAR' | 'MONTH' | 'DAY' | 'HOUR' | 'MINUTE' | 'SECOND')"`
		Expr  *Expression `parser:"'FROM' @@ ')'"`
	}

	IntervalLiteral struct {
		Value            string  `parser:"'INTERVAL' @String"`
		Leading          string  `parser:"@('YEAR' | 'MONTH' | 'DAY' | 'HOUR' | 'MINUTE' | 'SECOND')"`
		LeadingPrecision *string `parser:"('(' @Number ')')?"`
		Last             *string `parser:"('TO' @('YEAR' | 'MONTH' | 'DAY' | 'HOUR' | 'MINUTE' | 'SECOND')"`
		FractionalDigits *string `parser:"('(' @Number ')')?)?"`
	}

	Literal struct {
		Number    *string `parser:"  @Number"`
		String    *string `parser:"| @String"`
		National  *string `parser:"| @NString"`
		Hex       *string `parser:"| @HexString"`
		True      bool    `parser:"| @'TRUE'"`
		False     bool    `parser:"| @'FALSE'"`
		Null      bool    `parser:"| @'NULL'"`
		Date      *string `parser:"| 'DATE' @String"`
		Time      *string `parser:"| 'TIME' @String"`
		Timestamp *string `parser:"| 'TIMESTAMP' @String"`
	}

	// Reference is a column reference or, when followed by an argument list,
	// a function call.
	Reference struct {
		Parts []string      `parser:"@(Ident | QuotedIdent) ('.' @(Ident | QuotedIdent))*"`
		Call  *FunctionCall `parser:"@@?"`
	}

	FunctionCall struct {
		Distinct bool          `parser:"'(' @'DISTINCT'?"`
		Star     bool          `parser:"( @'*'"`
		Args     []*Expression `parser:"| @@ (',' @@)* )? ')'"`
		Over     *WindowSpec   `parser:"('OVER' @@)?"`
	}

	WindowSpec struct {
		PartitionBy []*Expression `parser:"'(' ('PARTITION' 'BY' @@ (',' @@)*)?"`
		OrderBy     []*OrderItem  `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
		Frame       *WindowFrame  `parser:"@@? ')'"`
	}

	WindowFrame struct {
		Units string      `parser:"@('ROWS' | 'RANGE' | 'GROUPS')"`
		Start *FrameBound `parser:"( 'BETWEEN' @@"`
		End   *FrameBound `parser:"  'AND' @@"`
		Only  *FrameBound `parser:"| @@ )"`
	}

	FrameBound struct {
		Current   bool    `parser:"  @('CURRENT' 'ROW')"`
		Unbounded bool    `parser:"| ( @'UNBOUNDED'"`
		Offset    *string `parser:"  | @Number )"`
		Direction string  `parser:"  @('PRECEDING' | 'FOLLOWING')"`
	}
)

var comparisonOps = map[string]ast.BinaryOperator{
	"=":  ast.OpEq,
	"<>": ast.OpNotEq,
	"!=": ast.OpNotEq,
	"<":  ast.OpLt,
	"<=": ast.OpLtEq,
	">":  ast.OpGt,
	">=": ast.OpGtEq,
}

var arithmeticOps = map[string]ast.BinaryOperator{
	"+": ast.OpPlus,
	"-": ast.OpMinus,
	"*": ast.OpMultiply,
	"/": ast.OpDivide,
	"%": ast.OpModulus,
}

var dateTimeFields = map[string]ast.DateTimeField{
	"YEAR":   ast.Year,
	"MONTH":  ast.Month,
	"DAY":    ast.Day,
	"HOUR":   ast.Hour,
	"MINUTE": ast.Minute,
	"SECOND": ast.Second,
}

func (e *Expression) toAST() (ast.Expr, error) {
	if e == nil {
		return nil, nil
	}
	return e.Or.toAST()
}

func expressions(exprs []*Expression) ([]ast.Expr, error) {
	if len(exprs) == 0 {
		return nil, nil
	}

	out := make([]ast.Expr, len(exprs))
	for i, e := range exprs {
		converted, err := e.toAST()
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}

func (e *OrExpression) toAST() (ast.Expr, error) {
	left, err := e.Left.toAST()
	if err != nil {
		return nil, err
	}

	for _, r := range e.Rest {
		right, err := r.toAST()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Op: ast.OpOr, Right: right}
	}
	return left, nil
}

func (e *AndExpression) toAST() (ast.Expr, error) {
	left, err := e.Left.toAST()
	if err != nil {
		return nil, err
	}

	for _, r := range e.Rest {
		right, err := r.toAST()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Op: ast.OpAnd, Right: right}
	}
	return left, nil
}

func (e *NotExpression) toAST() (ast.Expr, error) {
	if e.Not != nil {
		operand, err := e.Not.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.UnaryNot, Expr: operand}, nil
	}
	return e.Predicate.toAST()
}

func (p *Predicate) toAST() (ast.Expr, error) {
	left, err := p.Left.toAST()
	if err != nil {
		return nil, err
	}

	switch {
	case p.Compare != nil:
		right, err := p.Compare.Right.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Left: left, Op: comparisonOps[p.Compare.Op], Right: right}, nil
	case p.IsNull != nil:
		if p.IsNull.Not {
			return &ast.IsNotNull{Expr: left}, nil
		}
		return &ast.IsNull{Expr: left}, nil
	case p.Between != nil:
		low, err := p.Between.Low.toAST()
		if err != nil {
			return nil, err
		}
		high, err := p.Between.High.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.Between{Expr: left, Negated: p.Between.Not, Low: low, High: high}, nil
	case p.In != nil:
		if p.In.Subquery != nil {
			q, err := p.In.Subquery.toAST()
			if err != nil {
				return nil, err
			}
			return &ast.InSubquery{Expr: left, Subquery: q, Negated: p.In.Not}, nil
		}
		list, err := expressions(p.In.List)
		if err != nil {
			return nil, err
		}
		return &ast.InList{Expr: left, List: list, Negated: p.In.Not}, nil
	case p.Like != nil:
		pattern, err := p.Like.Pattern.toAST()
		if err != nil {
			return nil, err
		}
		op := ast.OpLike
		if p.Like.Not {
			op = ast.OpNotLike
		}
		return &ast.BinaryOp{Left: left, Op: op, Right: pattern}, nil
	default:
		return left, nil
	}
}

func (a *Additive) toAST() (ast.Expr, error) {
	left, err := a.Left.toAST()
	if err != nil {
		return nil, err
	}

	for _, r := range a.Rest {
		right, err := r.Right.toAST()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Op: arithmeticOps[r.Op], Right: right}
	}
	return left, nil
}

func (t *Term) toAST() (ast.Expr, error) {
	left, err := t.Left.toAST()
	if err != nil {
		return nil, err
	}

	for _, r := range t.Rest {
		right, err := r.Right.toAST()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Op: arithmeticOps[r.Op], Right: right}
	}
	return left, nil
}

func (u *Unary) toAST() (ast.Expr, error) {
	if u.Operand == nil {
		return u.Postfix.toAST()
	}

	operand, err := u.Operand.toAST()
	if err != nil {
		return nil, err
	}

	op := ast.UnaryPlus
	if u.Sign == "-" {
		op = ast.UnaryMinus
	}
	return &ast.UnaryOp{Op: op, Expr: operand}, nil
}

func (p *Postfix) toAST() (ast.Expr, error) {
	e, err := p.Primary.toAST()
	if err != nil {
		return nil, err
	}
	if p.Collation != nil {
		return &ast.Collate{Expr: e, Collation: p.Collation.toAST()}, nil
	}
	return e, nil
}

func (p *Primary) toAST() (ast.Expr, error) {
	switch {
	case p.Case != nil:
		return p.Case.toAST()
	case p.Cast != nil:
		e, err := p.Cast.Expr.toAST()
		if err != nil {
			return nil, err
		}
		dt, err := p.Cast.Type.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.Cast{Expr: e, DataType: dt}, nil
	case p.Extract != nil:
		e, err := p.Extract.Expr.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.Extract{Field: dateTimeFields[strings.ToUpper(p.Extract.Field)], Expr: e}, nil
	case p.Exists != nil:
		q, err := p.Exists.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.Exists{Query: q}, nil
	case p.Interval != nil:
		return p.Interval.toAST()
	case p.Literal != nil:
		return p.Literal.toAST(), nil
	case p.Subquery != nil:
		q, err := p.Subquery.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.Subquery{Query: q}, nil
	case p.Nested != nil:
		// grouping is implied by the tree shape; writers parenthesize by precedence
		return p.Nested.toAST()
	case p.Ref != nil:
		return p.Ref.toAST()
	default:
		return nil, errors.New("empty expression")
	}
}

func (c *CaseExpression) toAST() (ast.Expr, error) {
	operand, err := c.Operand.toAST()
	if err != nil {
		return nil, err
	}

	out := &ast.Case{
		Operand:    operand,
		Conditions: make([]ast.Expr, len(c.Whens)),
		Results:    make([]ast.Expr, len(c.Whens)),
	}
	for i, w := range c.Whens {
		if out.Conditions[i], err = w.Condition.toAST(); err != nil {
			return nil, err
		}
		if out.Results[i], err = w.Result.toAST(); err != nil {
			return nil, err
		}
	}

	if out.ElseResult, err = c.Else.toAST(); err != nil {
		return nil, err
	}
	return out, nil
}

func (i *IntervalLiteral) toAST() (ast.Expr, error) {
	out := &ast.Interval{
		Value:        unquote(i.Value),
		LeadingField: dateTimeFields[strings.ToUpper(i.Leading)],
	}

	var err error
	if out.LeadingPrecision, err = optionalUint(i.LeadingPrecision); err != nil {
		return nil, err
	}
	if i.Last != nil {
		last := dateTimeFields[strings.ToUpper(*i.Last)]
		out.LastField = &last
	}
	if out.FractionalSecondsPrecision, err = optionalUint(i.FractionalDigits); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Literal) toAST() ast.Value {
	switch {
	case l.Number != nil:
		return &ast.Number{Value: *l.Number}
	case l.String != nil:
		return &ast.SingleQuotedString{Value: unquote(*l.String)}
	case l.National != nil:
		return &ast.NationalString{Value: unquote((*l.National)[1:])}
	case l.Hex != nil:
		return &ast.HexString{Value: unquote((*l.Hex)[1:])}
	case l.True:
		return &ast.Boolean{Value: true}
	case l.False:
		return &ast.Boolean{Value: false}
	case l.Date != nil:
		return &ast.Date{Value: unquote(*l.Date)}
	case l.Time != nil:
		return &ast.Time{Value: unquote(*l.Time)}
	case l.Timestamp != nil:
		return &ast.Timestamp{Value: unquote(*l.Timestamp)}
	default:
		return &ast.Null{}
	}
}

func (r *Reference) toAST() (ast.Expr, error) {
	if r.Call != nil {
		return r.Call.toAST(ast.Name(r.Parts...))
	}
	if len(r.Parts) == 1 {
		return &ast.Identifier{Value: ast.Ident(r.Parts[0])}, nil
	}
	return &ast.CompoundIdentifier{Parts: idents(r.Parts)}, nil
}

func (f *FunctionCall) toAST(name ast.ObjectName) (ast.Expr, error) {
	out := &ast.Function{Name: name, Distinct: f.Distinct}
	if f.Star {
		out.Args = []ast.Expr{&ast.Wildcard{}}
	} else {
		args, err := expressions(f.Args)
		if err != nil {
			return nil, err
		}
		out.Args = args
	}

	if f.Over != nil {
		spec, err := f.Over.toAST()
		if err != nil {
			return nil, err
		}
		out.Over = spec
	}
	return out, nil
}

func (w *WindowSpec) toAST() (*ast.WindowSpec, error) {
	partition, err := expressions(w.PartitionBy)
	if err != nil {
		return nil, err
	}
	order, err := orderItems(w.OrderBy)
	if err != nil {
		return nil, err
	}

	spec := &ast.WindowSpec{PartitionBy: partition, OrderBy: order}
	if w.Frame != nil {
		if spec.WindowFrame, err = w.Frame.toAST(); err != nil {
			return nil, err
		}
	}
	return spec, nil
}

var frameUnits = map[string]ast.WindowFrameUnits{
	"ROWS":   ast.Rows,
	"RANGE":  ast.Range,
	"GROUPS": ast.Groups,
}

func (f *WindowFrame) toAST() (*ast.WindowFrame, error) {
	frame := &ast.WindowFrame{Units: frameUnits[strings.ToUpper(f.Units)]}
	if f.Only != nil {
		start, err := f.Only.toAST()
		if err != nil {
			return nil, err
		}
		frame.StartBound = start
		return frame, nil
	}

	start, err := f.Start.toAST()
	if err != nil {
		return nil, err
	}
	end, err := f.End.toAST()
	if err != nil {
		return nil, err
	}
	frame.StartBound = start
	frame.EndBound = &end
	return frame, nil
}

func (b *FrameBound) toAST() (ast.WindowFrameBound, error) {
	if b.Current {
		return ast.WindowFrameBound{Kind: ast.CurrentRow}, nil
	}

	offset, err := optionalUint(b.Offset)
	if err != nil {
		return ast.WindowFrameBound{}, err
	}

	kind := ast.Preceding
	if strings.EqualFold(b.Direction, "FOLLOWING") {
		kind = ast.Following
	}
	return ast.WindowFrameBound{Kind: kind, Offset: offset}, nil
}

func optionalUint(s *string) (*uint64, error) {
	if s == nil {
		return nil, nil
	}

	v, err := strconv.ParseUint(*s, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid unsigned integer %q", *s)
	}
	return &v, nil
}
