package ast

import "strings"

// Ident is a single identifier. Quoted identifiers keep their quotes.
type Ident string

// Expr returns the identifier as an expression.
func (i Ident) Expr() *Identifier {
	return &Identifier{Value: i}
}

func (Ident) isSetVariableValue() {}

// ObjectName is a possibly qualified name such as schema.table.
type ObjectName []Ident

// Name builds an ObjectName from its parts.
func Name(parts ...string) ObjectName {
	name := make(ObjectName, len(parts))
	for i, p := range parts {
		name[i] = Ident(p)
	}
	return name
}

// String joins the parts with ".".
func (n ObjectName) String() string {
	parts := make([]string, len(n))
	for i, p := range n {
		parts[i] = string(p)
	}
	return strings.Join(parts, ".")
}

// Statement is a top-level SQL statement.
type Statement interface {
	isStatement()
}

func (*Query) isStatement()            {}
func (*Insert) isStatement()           {}
func (*Update) isStatement()           {}
func (*Delete) isStatement()           {}
func (*CreateTable) isStatement()      {}
func (*CreateView) isStatement()       {}
func (*AlterTable) isStatement()       {}
func (*Drop) isStatement()             {}
func (*SetVariable) isStatement()      {}
func (*ShowVariable) isStatement()     {}
func (*ShowColumns) isStatement()      {}
func (*StartTransaction) isStatement() {}
func (*SetTransaction) isStatement()   {}
func (*Commit) isStatement()           {}
func (*Rollback) isStatement()         {}

type (
	// Insert is INSERT INTO table [(columns)] source.
	Insert struct {
		TableName ObjectName
		Columns   []Ident
		Source    *Query
	}

	// Update is UPDATE table SET assignments [WHERE selection].
	Update struct {
		TableName   ObjectName
		Assignments []Assignment
		Selection   Expr
	}

	// Delete is DELETE FROM table [WHERE selection].
	Delete struct {
		TableName ObjectName
		Selection Expr
	}

	// Assignment is a single column = value pair of an UPDATE.
	Assignment struct {
		ID    Ident
		Value Expr
	}

	// SetVariable is SET [LOCAL] variable = value.
	SetVariable struct {
		Local    bool
		Variable Ident
		Value    SetVariableValue
	}

	// ShowVariable is SHOW variable.
	ShowVariable struct {
		Variable Ident
	}

	// ShowColumns is SHOW [EXTENDED] [FULL] COLUMNS FROM table [filter].
	ShowColumns struct {
		Extended  bool
		Full      bool
		TableName ObjectName
		Filter    ShowStatementFilter
	}

	StartTransaction struct {
		Modes []TransactionMode
	}

	SetTransaction struct {
		Modes []TransactionMode
	}

	Commit struct {
		Chain bool
	}

	Rollback struct {
		Chain bool
	}
)

// SetVariableValue is the right-hand side of SET: an Ident or any Value.
type SetVariableValue interface {
	isSetVariableValue()
}

// ShowStatementFilter restricts the rows returned by a SHOW statement.
type ShowStatementFilter interface {
	isShowStatementFilter()
}

type (
	ShowLike struct {
		Pattern string
	}

	ShowWhere struct {
		Expr Expr
	}
)

func (*ShowLike) isShowStatementFilter()  {}
func (*ShowWhere) isShowStatementFilter() {}

// TransactionMode is either a TransactionAccessMode or a
// TransactionIsolationLevel.
type TransactionMode interface {
	isTransactionMode()
}

type TransactionAccessMode int

const (
	ReadOnly TransactionAccessMode = iota + 1
	ReadWrite
)

type TransactionIsolationLevel int

const (
	ReadUncommitted TransactionIsolationLevel = iota + 1
	ReadCommitted
	RepeatableRead
	Serializable
)

func (TransactionAccessMode) isTransactionMode()     {}
func (TransactionIsolationLevel) isTransactionMode() {}
