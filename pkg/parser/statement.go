package parser

import (
	"github.com/pseudomuto/sqlgen/pkg/ast"
)

type (
	InsertStmt struct {
		Table   *ObjectName `parser:"'INSERT' 'INTO' @@"`
		Columns []string    `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
		Source  *Query      `parser:"@@"`
	}

	UpdateStmt struct {
		Table       *ObjectName         `parser:"'UPDATE' @@"`
		Assignments []*AssignmentClause `parser:"'SET' @@ (',' @@)*"`
		Where       *Expression         `parser:"('WHERE' @@)?"`
	}

	AssignmentClause struct {
		Column string      `parser:"@(Ident | QuotedIdent) '='"`
		Value  *Expression `parser:"@@"`
	}

	DeleteStmt struct {
		Table *ObjectName `parser:"'DELETE' 'FROM' @@"`
		Where *Expression `parser:"('WHERE' @@)?"`
	}

	// SetStmt is either SET TRANSACTION or a variable assignment.
	SetStmt struct {
		Transaction []*TransactionMode `parser:"'SET' ( 'TRANSACTION' @@ (',' @@)*"`
		Local       bool               `parser:"| @'LOCAL'?"`
		Variable    string             `parser:"  @(Ident | QuotedIdent) ( '=' | 'TO' )"`
		Value       *SetValue          `parser:"  @@ )"`
	}

	SetValue struct {
		Literal *Literal `parser:"  @@"`
		Ident   *string  `parser:"| @(Ident | QuotedIdent)"`
	}

	ShowStmt struct {
		Columns  *ShowColumnsClause `parser:"'SHOW' ( @@"`
		Variable *string            `parser:"| @(Ident | QuotedIdent) )"`
	}

	ShowColumnsClause struct {
		Extended bool        `parser:"@'EXTENDED'?"`
		Full     bool        `parser:"@'FULL'? 'COLUMNS' ( 'FROM' | 'IN' )"`
		Table    *ObjectName `parser:"@@"`
		Like     *string     `parser:"( 'LIKE' @String"`
		Where    *Expression `parser:"| 'WHERE' @@ )?"`
	}

	StartStmt struct {
		Modes []*TransactionMode `parser:"( 'START' 'TRANSACTION' | 'BEGIN' 'TRANSACTION'? ) ( @@ (',' @@)* )?"`
	}

	TransactionMode struct {
		ReadOnly  bool            `parser:"  @('READ' 'ONLY')"`
		ReadWrite bool            `parser:"| @('READ' 'WRITE')"`
		Isolation *IsolationLevel `parser:"| 'ISOLATION' 'LEVEL' @@"`
	}

	IsolationLevel struct {
		ReadUncommitted bool `parser:"  @('READ' 'UNCOMMITTED')"`
		ReadCommitted   bool `parser:"| @('READ' 'COMMITTED')"`
		RepeatableRead  bool `parser:"| @('REPEATABLE' 'READ')"`
		Serializable    bool `parser:"| @'SERIALIZABLE'"`
	}

	// EndStmt is COMMIT or ROLLBACK.
	EndStmt struct {
		Rollback bool `parser:"( 'COMMIT' | @'ROLLBACK' ) ( 'WORK' | 'TRANSACTION' )?"`
		Chain    bool `parser:"@('AND' 'CHAIN')?"`
	}
)

func (i *InsertStmt) toAST() (*ast.Insert, error) {
	source, err := i.Source.toAST()
	if err != nil {
		return nil, err
	}
	return &ast.Insert{TableName: i.Table.toAST(), Columns: idents(i.Columns), Source: source}, nil
}

func (u *UpdateStmt) toAST() (*ast.Update, error) {
	out := &ast.Update{TableName: u.Table.toAST()}
	for _, a := range u.Assignments {
		v, err := a.Value.toAST()
		if err != nil {
			return nil, err
		}
		out.Assignments = append(out.Assignments, ast.Assignment{ID: ast.Ident(a.Column), Value: v})
	}

	var err error
	if out.Selection, err = u.Where.toAST(); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *DeleteStmt) toAST() (*ast.Delete, error) {
	where, err := d.Where.toAST()
	if err != nil {
		return nil, err
	}
	return &ast.Delete{TableName: d.Table.toAST(), Selection: where}, nil
}

func (s *SetStmt) toAST() (ast.Statement, error) {
	if len(s.Transaction) > 0 {
		return &ast.SetTransaction{Modes: transactionModes(s.Transaction)}, nil
	}

	out := &ast.SetVariable{Local: s.Local, Variable: ast.Ident(s.Variable)}
	if s.Value.Ident != nil {
		out.Value = ast.Ident(*s.Value.Ident)
	} else {
		out.Value = s.Value.Literal.toAST()
	}
	return out, nil
}

func (s *ShowStmt) toAST() (ast.Statement, error) {
	if s.Variable != nil {
		return &ast.ShowVariable{Variable: ast.Ident(*s.Variable)}, nil
	}

	c := s.Columns
	out := &ast.ShowColumns{Extended: c.Extended, Full: c.Full, TableName: c.Table.toAST()}
	switch {
	case c.Like != nil:
		out.Filter = &ast.ShowLike{Pattern: unquote(*c.Like)}
	case c.Where != nil:
		e, err := c.Where.toAST()
		if err != nil {
			return nil, err
		}
		out.Filter = &ast.ShowWhere{Expr: e}
	}
	return out, nil
}

func (s *StartStmt) toAST() (*ast.StartTransaction, error) {
	return &ast.StartTransaction{Modes: transactionModes(s.Modes)}, nil
}

func (e *EndStmt) toAST() ast.Statement {
	if e.Rollback {
		return &ast.Rollback{Chain: e.Chain}
	}
	return &ast.Commit{Chain: e.Chain}
}

func transactionModes(modes []*TransactionMode) []ast.TransactionMode {
	if len(modes) == 0 {
		return nil
	}

	out := make([]ast.TransactionMode, len(modes))
	for i, m := range modes {
		switch {
		case m.ReadOnly:
			out[i] = ast.ReadOnly
		case m.ReadWrite:
			out[i] = ast.ReadWrite
		default:
			out[i] = m.Isolation.toAST()
		}
	}
	return out
}

func (l *IsolationLevel) toAST() ast.TransactionIsolationLevel {
	switch {
	case l.ReadUncommitted:
		return ast.ReadUncommitted
	case l.ReadCommitted:
		return ast.ReadCommitted
	case l.RepeatableRead:
		return ast.RepeatableRead
	default:
		return ast.Serializable
	}
}
