package parser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/ast"
)

type (
	Query struct {
		With    []*CommonTableExpr `parser:"('WITH' @@ (',' @@)*)?"`
		Body    *SetExpression     `parser:"@@"`
		OrderBy []*OrderItem       `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
		Limit   *Expression        `parser:"('LIMIT' @@)?"`
		Offset  *Expression        `parser:"('OFFSET' @@ ('ROW' | 'ROWS')?)?"`
		Fetch   *FetchClause       `parser:"@@?"`
	}

	CommonTableExpr struct {
		Alias *AliasClause `parser:"@@"`
		Query *Query       `parser:"'AS' '(' @@ ')'"`
	}

	OrderItem struct {
		Expr *Expression `parser:"@@"`
		Asc  bool        `parser:"( @'ASC'"`
		Desc bool        `parser:"| @'DESC' )?"`
	}

	FetchClause struct {
		Quantity *Expression `parser:"'FETCH' ('FIRST' | 'NEXT') @@?"`
		Percent  bool        `parser:"@'PERCENT'? ('ROW' | 'ROWS')"`
		WithTies bool        `parser:"( 'ONLY' | @('WITH' 'TIES') )"`
	}

	// SetExpression is a chain of UNION and EXCEPT operations over
	// SetTerms. INTERSECT binds tighter and is handled by SetTerm.
	SetExpression struct {
		Left *SetTerm    `parser:"@@"`
		Rest []*SetUnion `parser:"@@*"`
	}

	SetUnion struct {
		Op    string   `parser:"@('UNION' | 'EXCEPT')"`
		All   bool     `parser:"( @'ALL' | 'DISTINCT' )?"`
		Right *SetTerm `parser:"@@"`
	}

	SetTerm struct {
		Left *SetPrimary     `parser:"@@"`
		Rest []*SetIntersect `parser:"@@*"`
	}

	SetIntersect struct {
		All   bool        `parser:"'INTERSECT' ( @'ALL' | 'DISTINCT' )?"`
		Right *SetPrimary `parser:"@@"`
	}

	SetPrimary struct {
		Select *SelectClause `parser:"  @@"`
		Values *ValuesClause `parser:"| @@"`
		Nested *Query        `parser:"| '(' @@ ')'"`
	}

	ValuesClause struct {
		Rows []*ValuesRow `parser:"'VALUES' @@ (',' @@)*"`
	}

	ValuesRow struct {
		Exprs []*Expression `parser:"'(' @@ (',' @@)* ')'"`
	}

	SelectClause struct {
		Distinct   bool              `parser:"'SELECT' ( @'DISTINCT' | 'ALL' )?"`
		Projection []*SelectItem     `parser:"@@ (',' @@)*"`
		From       []*TableWithJoins `parser:"('FROM' @@ (',' @@)*)?"`
		Where      *Expression       `parser:"('WHERE' @@)?"`
		GroupBy    []*Expression     `parser:"('GROUP' 'BY' @@ (',' @@)*)?"`
		Having     *Expression       `parser:"('HAVING' @@)?"`
	}

	SelectItem struct {
		Wildcard  bool        `parser:"  @'*'"`
		Qualified []string    `parser:"| @(Ident | QuotedIdent) ('.' @(Ident | QuotedIdent))* '.' '*'"`
		Expr      *Expression `parser:"| ( @@"`
		Alias     *string     `parser:"    ('AS'? @(Ident | QuotedIdent))? )"`
	}

	TableWithJoins struct {
		Relation *TableFactor `parser:"@@"`
		Joins    []*Join      `parser:"@@*"`
	}

	TableFactor struct {
		Derived *DerivedTable   `parser:"  @@"`
		Nested  *TableWithJoins `parser:"| '(' @@ ')'"`
		Table   *TableReference `parser:"| @@"`
	}

	DerivedTable struct {
		Lateral bool         `parser:"@'LATERAL'?"`
		Query   *Query       `parser:"'(' @@ ')'"`
		Alias   *AliasClause `parser:"('AS'? @@)?"`
	}

	TableReference struct {
		Name  *ObjectName   `parser:"@@"`
		Args  []*Expression `parser:"( '(' (@@ (',' @@)*)? ')' )?"`
		Alias *AliasClause  `parser:"('AS'? @@)?"`
		Hints []*Expression `parser:"('WITH' '(' @@ (',' @@)* ')')?"`
	}

	AliasClause struct {
		Name    string   `parser:"@(Ident | QuotedIdent)"`
		Columns []string `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
	}

	Join struct {
		Natural    bool         `parser:"@'NATURAL'?"`
		CrossApply bool         `parser:"( @('CROSS' 'APPLY')"`
		OuterApply bool         `parser:"| @('OUTER' 'APPLY')"`
		Cross      bool         `parser:"| @'CROSS' 'JOIN'"`
		Left       bool         `parser:"| ( @'LEFT'"`
		Right      bool         `parser:"  | @'RIGHT'"`
		Full       bool         `parser:"  | @'FULL' ) 'OUTER'? 'JOIN'"`
		Inner      bool         `parser:"| @'INNER'? 'JOIN' )"`
		Relation   *TableFactor `parser:"@@"`
		On         *Expression  `parser:"( 'ON' @@"`
		Using      []string     `parser:"| 'USING' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')' )?"`
	}
)

func (q *Query) toAST() (*ast.Query, error) {
	out := &ast.Query{}
	for _, cte := range q.With {
		sub, err := cte.Query.toAST()
		if err != nil {
			return nil, err
		}
		out.With = append(out.With, ast.Cte{Alias: cte.Alias.toAST(), Query: sub})
	}

	var err error
	if out.Body, err = q.Body.toAST(); err != nil {
		return nil, err
	}
	if out.OrderBy, err = orderItems(q.OrderBy); err != nil {
		return nil, err
	}
	if out.Limit, err = q.Limit.toAST(); err != nil {
		return nil, err
	}
	if out.Offset, err = q.Offset.toAST(); err != nil {
		return nil, err
	}

	if q.Fetch != nil {
		quantity, err := q.Fetch.Quantity.toAST()
		if err != nil {
			return nil, err
		}
		out.Fetch = &ast.Fetch{Quantity: quantity, Percent: q.Fetch.Percent, WithTies: q.Fetch.WithTies}
	}

	return out, nil
}

func orderItems(items []*OrderItem) ([]ast.OrderByExpr, error) {
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]ast.OrderByExpr, len(items))
	for i, item := range items {
		e, err := item.Expr.toAST()
		if err != nil {
			return nil, err
		}

		switch {
		case item.Asc:
			out[i] = ast.Asc(e)
		case item.Desc:
			out[i] = ast.Desc(e)
		default:
			out[i] = ast.OrderByExpr{Expr: e}
		}
	}
	return out, nil
}

func (s *SetExpression) toAST() (ast.SetExpr, error) {
	left, err := s.Left.toAST()
	if err != nil {
		return nil, err
	}

	for _, r := range s.Rest {
		right, err := r.Right.toAST()
		if err != nil {
			return nil, err
		}

		op := ast.Union
		if strings.EqualFold(r.Op, "EXCEPT") {
			op = ast.Except
		}
		left = &ast.SetOperation{Op: op, All: r.All, Left: left, Right: right}
	}
	return left, nil
}

func (s *SetTerm) toAST() (ast.SetExpr, error) {
	left, err := s.Left.toAST()
	if err != nil {
		return nil, err
	}

	for _, r := range s.Rest {
		right, err := r.Right.toAST()
		if err != nil {
			return nil, err
		}
		left = &ast.SetOperation{Op: ast.Intersect, All: r.All, Left: left, Right: right}
	}
	return left, nil
}

func (s *SetPrimary) toAST() (ast.SetExpr, error) {
	switch {
	case s.Select != nil:
		return s.Select.toAST()
	case s.Values != nil:
		return s.Values.toAST()
	case s.Nested != nil:
		return s.Nested.toAST()
	default:
		return nil, errors.New("empty query body")
	}
}

func (v *ValuesClause) toAST() (*ast.Values, error) {
	out := &ast.Values{Rows: make([][]ast.Expr, len(v.Rows))}
	for i, row := range v.Rows {
		exprs, err := expressions(row.Exprs)
		if err != nil {
			return nil, err
		}
		out.Rows[i] = exprs
	}
	return out, nil
}

func (s *SelectClause) toAST() (*ast.Select, error) {
	out := &ast.Select{Distinct: s.Distinct}
	for _, item := range s.Projection {
		converted, err := item.toAST()
		if err != nil {
			return nil, err
		}
		out.Projection = append(out.Projection, converted)
	}

	for _, from := range s.From {
		twj, err := from.toAST()
		if err != nil {
			return nil, err
		}
		out.From = append(out.From, twj)
	}

	var err error
	if out.Selection, err = s.Where.toAST(); err != nil {
		return nil, err
	}
	if out.GroupBy, err = expressions(s.GroupBy); err != nil {
		return nil, err
	}
	if out.Having, err = s.Having.toAST(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SelectItem) toAST() (ast.SelectItem, error) {
	switch {
	case s.Wildcard:
		return &ast.Wildcard{}, nil
	case len(s.Qualified) > 0:
		return &ast.QualifiedWildcard{Name: ast.Name(s.Qualified...)}, nil
	}

	e, err := s.Expr.toAST()
	if err != nil {
		return nil, err
	}
	if s.Alias != nil {
		return &ast.ExprWithAlias{Expr: e, Alias: ast.Ident(*s.Alias)}, nil
	}
	return &ast.UnnamedExpr{Expr: e}, nil
}

func (t *TableWithJoins) toAST() (ast.TableWithJoins, error) {
	relation, err := t.Relation.toAST()
	if err != nil {
		return ast.TableWithJoins{}, err
	}

	out := ast.TableWithJoins{Relation: relation}
	for _, j := range t.Joins {
		join, err := j.toAST()
		if err != nil {
			return ast.TableWithJoins{}, err
		}
		out.Joins = append(out.Joins, join)
	}
	return out, nil
}

func (t *TableFactor) toAST() (ast.TableFactor, error) {
	switch {
	case t.Derived != nil:
		q, err := t.Derived.Query.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.Derived{Lateral: t.Derived.Lateral, Subquery: q, Alias: t.Derived.Alias.toPtr()}, nil
	case t.Nested != nil:
		twj, err := t.Nested.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.NestedJoin{TableWithJoins: twj}, nil
	case t.Table != nil:
		args, err := expressions(t.Table.Args)
		if err != nil {
			return nil, err
		}
		hints, err := expressions(t.Table.Hints)
		if err != nil {
			return nil, err
		}
		return &ast.Table{
			Name:      t.Table.Name.toAST(),
			Alias:     t.Table.Alias.toPtr(),
			Args:      args,
			WithHints: hints,
		}, nil
	default:
		return nil, errors.New("empty table factor")
	}
}

func (a *AliasClause) toAST() ast.TableAlias {
	return ast.TableAlias{Name: ast.Ident(a.Name), Columns: idents(a.Columns)}
}

func (a *AliasClause) toPtr() *ast.TableAlias {
	if a == nil {
		return nil
	}
	alias := a.toAST()
	return &alias
}

func (j *Join) toAST() (ast.Join, error) {
	relation, err := j.Relation.toAST()
	if err != nil {
		return ast.Join{}, err
	}

	op := ast.JoinOperator{Kind: j.kind()}
	switch {
	case j.Natural:
		op.Constraint = &ast.Natural{}
	case j.On != nil:
		e, err := j.On.toAST()
		if err != nil {
			return ast.Join{}, err
		}
		op.Constraint = &ast.On{Expr: e}
	case len(j.Using) > 0:
		op.Constraint = &ast.Using{Columns: idents(j.Using)}
	}

	return ast.Join{Relation: relation, Operator: op}, nil
}

func (j *Join) kind() ast.JoinKind {
	switch {
	case j.CrossApply:
		return ast.CrossApply
	case j.OuterApply:
		return ast.OuterApply
	case j.Cross:
		return ast.CrossJoin
	case j.Left:
		return ast.LeftOuterJoin
	case j.Right:
		return ast.RightOuterJoin
	case j.Full:
		return ast.FullOuterJoin
	default:
		return ast.InnerJoin
	}
}
