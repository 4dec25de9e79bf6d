package writer

import "github.com/pseudomuto/sqlgen/pkg/ast"

// ExprWriter renders expressions, literals and the lexical pieces they are
// made of.
type ExprWriter interface {
	WriteExpr(ast.Expr) error
	WriteValue(ast.Value) error
	WriteFunction(*ast.Function) error
	WriteWindowSpec(*ast.WindowSpec) error
	WriteWindowFrame(*ast.WindowFrame) error
	WriteWindowFrameBound(ast.WindowFrameBound) error
	WriteWindowFrameUnits(ast.WindowFrameUnits) error
	WriteDateTimeField(ast.DateTimeField) error
	WriteBinaryOperator(ast.BinaryOperator) error
	WriteUnaryOperator(ast.UnaryOperator) error
	WriteObjectName(ast.ObjectName) error
}

// QueryWriter renders queries and everything that can appear inside one.
type QueryWriter interface {
	WriteQuery(*ast.Query) error
	WriteCte(ast.Cte) error
	WriteSetExpr(ast.SetExpr) error
	WriteSetOperator(ast.SetOperator) error
	WriteSelect(*ast.Select) error
	WriteSelectItem(ast.SelectItem) error
	WriteValues(*ast.Values) error
	WriteTableWithJoins(ast.TableWithJoins) error
	WriteTableFactor(ast.TableFactor) error
	WriteTableAlias(ast.TableAlias) error
	WriteJoin(ast.Join) error
	WriteJoinOperator(ast.JoinOperator) error
	WriteJoinConstraint(ast.JoinConstraint) error
	WriteOrderByExpr(ast.OrderByExpr) error
	WriteFetch(*ast.Fetch) error
}

// DDLWriter renders schema definitions.
type DDLWriter interface {
	WriteColumnDef(ast.ColumnDef) error
	WriteColumnOptionDef(ast.ColumnOptionDef) error
	WriteColumnOption(ast.ColumnOption) error
	WriteDataType(ast.DataType) error
	WriteTableConstraint(ast.TableConstraint) error
	WriteAlterTableOperation(ast.AlterTableOperation) error
	WriteSQLOption(ast.SQLOption) error
	WriteObjectType(ast.ObjectType) error
	WriteFileFormat(ast.FileFormat) error
}

// StatementWriter renders top-level statements and their statement-only
// pieces.
type StatementWriter interface {
	WriteStatement(ast.Statement) error
	WriteAssignment(ast.Assignment) error
	WriteTransactionMode(ast.TransactionMode) error
	WriteTransactionAccessMode(ast.TransactionAccessMode) error
	WriteTransactionIsolationLevel(ast.TransactionIsolationLevel) error
	WriteSetVariableValue(ast.SetVariableValue) error
	WriteShowStatementFilter(ast.ShowStatementFilter) error
}

// SQLWriter is the full contract of a dialect writer.
type SQLWriter interface {
	ExprWriter
	QueryWriter
	DDLWriter
	StatementWriter

	// Dialect is the name the writer is registered under.
	Dialect() string
}
