package mssql

import (
	"github.com/pseudomuto/sqlgen/pkg/ast"
	"github.com/pseudomuto/sqlgen/pkg/lexicon"
	"github.com/pseudomuto/sqlgen/pkg/writer"
)

// WriteStatement renders a statement without a terminating semicolon.
func (w *Writer) WriteStatement(s ast.Statement) error {
	switch s := s.(type) {
	case nil:
		return writer.Malformed("statement", "is nil")
	case *ast.Query:
		return w.WriteQuery(s)
	case *ast.Insert:
		return w.writeInsert(s)
	case *ast.Update:
		return w.writeUpdate(s)
	case *ast.Delete:
		return w.writeDelete(s)
	case *ast.CreateTable:
		return w.writeCreateTable(s)
	case *ast.CreateView:
		return w.writeCreateView(s)
	case *ast.AlterTable:
		if err := w.p.Write("ALTER TABLE "); err != nil {
			return err
		}
		if err := w.WriteObjectName(s.Name); err != nil {
			return err
		}
		if err := w.p.Write(" "); err != nil {
			return err
		}
		return w.WriteAlterTableOperation(s.Operation)
	case *ast.Drop:
		return w.writeDrop(s)
	case *ast.SetVariable:
		if s.Local {
			return unsupported("SET LOCAL")
		}
		if err := w.p.Writes("SET ", string(s.Variable), " = "); err != nil {
			return err
		}
		return w.WriteSetVariableValue(s.Value)
	case *ast.ShowVariable:
		return unsupported("SHOW", "query sys.configurations")
	case *ast.ShowColumns:
		return unsupported("SHOW COLUMNS", "query INFORMATION_SCHEMA.COLUMNS")
	case *ast.StartTransaction:
		if len(s.Modes) > 0 {
			return unsupported("BEGIN TRANSACTION with modes", "use SET TRANSACTION ISOLATION LEVEL")
		}
		return w.p.Write("BEGIN TRANSACTION")
	case *ast.SetTransaction:
		return w.writeSetTransaction(s)
	case *ast.Commit:
		if s.Chain {
			return unsupported("COMMIT AND CHAIN")
		}
		return w.p.Write("COMMIT")
	case *ast.Rollback:
		if s.Chain {
			return unsupported("ROLLBACK AND CHAIN")
		}
		return w.p.Write("ROLLBACK")
	default:
		return unknown(s)
	}
}

func (w *Writer) writeInsert(s *ast.Insert) error {
	if s.Source == nil {
		return writer.Malformed("INSERT", "has no source")
	}

	if err := w.p.Write("INSERT INTO "); err != nil {
		return err
	}
	if err := w.WriteObjectName(s.TableName); err != nil {
		return err
	}
	if len(s.Columns) > 0 {
		if err := w.p.Write(" "); err != nil {
			return err
		}
		if err := w.parens(func() error { return w.writeIdents(", ", s.Columns) }); err != nil {
			return err
		}
	}
	if err := w.p.Line(); err != nil {
		return err
	}
	return w.WriteQuery(s.Source)
}

func (w *Writer) writeUpdate(s *ast.Update) error {
	if len(s.Assignments) == 0 {
		return writer.Malformed("UPDATE", "has no assignments")
	}

	if err := w.p.Write("UPDATE "); err != nil {
		return err
	}
	if err := w.WriteObjectName(s.TableName); err != nil {
		return err
	}
	if err := w.clause("SET "); err != nil {
		return err
	}
	if err := writer.List(w.p, ", ", s.Assignments, w.WriteAssignment); err != nil {
		return err
	}
	return w.writeWhere(s.Selection)
}

func (w *Writer) writeDelete(s *ast.Delete) error {
	if err := w.p.Write("DELETE FROM "); err != nil {
		return err
	}
	if err := w.WriteObjectName(s.TableName); err != nil {
		return err
	}
	return w.writeWhere(s.Selection)
}

func (w *Writer) writeWhere(e ast.Expr) error {
	if e == nil {
		return nil
	}
	if err := w.clause("WHERE "); err != nil {
		return err
	}
	return w.WriteExpr(e)
}

// WriteAssignment renders column = value.
func (w *Writer) WriteAssignment(a ast.Assignment) error {
	if err := w.p.Writes(string(a.ID), " = "); err != nil {
		return err
	}
	return w.WriteExpr(a.Value)
}

// writeCreateTable renders one column or constraint per line, one level
// deeper than the statement. External tables take their location and file
// format from a trailing WITH list.
func (w *Writer) writeCreateTable(s *ast.CreateTable) error {
	if len(s.Columns) == 0 && len(s.Constraints) == 0 {
		return writer.Malformed("CREATE TABLE", "has no columns")
	}
	if s.External && (s.Location == "" || s.FileFormat == 0) {
		return writer.Malformed("CREATE EXTERNAL TABLE", "requires a location and file format")
	}

	kw := "CREATE TABLE "
	if s.External {
		kw = "CREATE EXTERNAL TABLE "
	}
	if err := w.p.Write(kw); err != nil {
		return err
	}
	if err := w.WriteObjectName(s.Name); err != nil {
		return err
	}
	if err := w.p.Write(" ("); err != nil {
		return err
	}

	err := w.p.Indented(func() error {
		sep := ""
		element := func(fn func() error) error {
			if err := w.p.Write(sep); err != nil {
				return err
			}
			sep = ","
			if err := w.p.Line(); err != nil {
				return err
			}
			return fn()
		}

		for _, c := range s.Columns {
			if err := element(func() error { return w.WriteColumnDef(c) }); err != nil {
				return err
			}
		}
		for _, c := range s.Constraints {
			if err := element(func() error { return w.WriteTableConstraint(c) }); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := w.p.Line(); err != nil {
		return err
	}
	if err := w.p.Write(")"); err != nil {
		return err
	}

	if !s.External && len(s.WithOptions) == 0 {
		return nil
	}

	if err := w.clause("WITH "); err != nil {
		return err
	}
	return w.parens(func() error {
		if s.External {
			if err := w.p.Writes("LOCATION = ", lexicon.Quote(s.Location), ", FILE_FORMAT = "); err != nil {
				return err
			}
			if err := w.WriteFileFormat(s.FileFormat); err != nil {
				return err
			}
			if len(s.WithOptions) > 0 {
				if err := w.p.Write(", "); err != nil {
					return err
				}
			}
		}
		return writer.List(w.p, ", ", s.WithOptions, w.WriteSQLOption)
	})
}

func (w *Writer) writeCreateView(s *ast.CreateView) error {
	switch {
	case s.Query == nil:
		return writer.Malformed("CREATE VIEW", "has no query")
	case s.Materialized:
		return unsupported("MATERIALIZED VIEW", "create an indexed view")
	case len(s.WithOptions) > 0:
		return unsupported("view WITH options")
	}

	if err := w.p.Write("CREATE VIEW "); err != nil {
		return err
	}
	if err := w.WriteObjectName(s.Name); err != nil {
		return err
	}
	if err := w.p.Write(" AS"); err != nil {
		return err
	}
	if err := w.p.Line(); err != nil {
		return err
	}
	return w.WriteQuery(s.Query)
}

func (w *Writer) writeDrop(s *ast.Drop) error {
	switch {
	case len(s.Names) == 0:
		return writer.Malformed("DROP", "has no names")
	case s.Cascade:
		return unsupported("DROP ... CASCADE")
	}

	if err := w.p.Write("DROP "); err != nil {
		return err
	}
	if err := w.WriteObjectType(s.ObjectType); err != nil {
		return err
	}
	if err := w.p.Write(" "); err != nil {
		return err
	}
	if s.IfExists {
		if err := w.p.Write("IF EXISTS "); err != nil {
			return err
		}
	}
	return writer.List(w.p, ", ", s.Names, w.WriteObjectName)
}

// writeSetTransaction renders SET TRANSACTION ISOLATION LEVEL, the only
// transaction mode T-SQL sets this way.
func (w *Writer) writeSetTransaction(s *ast.SetTransaction) error {
	switch {
	case len(s.Modes) == 0:
		return writer.Malformed("SET TRANSACTION", "has no modes")
	case len(s.Modes) > 1:
		return unsupported("SET TRANSACTION with several modes")
	}

	if _, ok := s.Modes[0].(ast.TransactionIsolationLevel); !ok {
		return unsupported("transaction access mode")
	}
	if err := w.p.Write("SET TRANSACTION "); err != nil {
		return err
	}
	return w.WriteTransactionMode(s.Modes[0])
}

// WriteTransactionMode renders an access mode or isolation level.
func (w *Writer) WriteTransactionMode(m ast.TransactionMode) error {
	switch m := m.(type) {
	case ast.TransactionAccessMode:
		return w.WriteTransactionAccessMode(m)
	case ast.TransactionIsolationLevel:
		if err := w.p.Write("ISOLATION LEVEL "); err != nil {
			return err
		}
		return w.WriteTransactionIsolationLevel(m)
	case nil:
		return writer.Malformed("transaction mode", "is nil")
	default:
		return unknown(m)
	}
}

// WriteTransactionAccessMode always fails: SQL Server has no access modes.
func (w *Writer) WriteTransactionAccessMode(ast.TransactionAccessMode) error {
	return unsupported("transaction access mode")
}

// WriteTransactionIsolationLevel renders ISOLATION LEVEL <level>.
func (w *Writer) WriteTransactionIsolationLevel(l ast.TransactionIsolationLevel) error {
	kw, ok := lexicon.IsolationLevel(l)
	if !ok {
		return unknownKeyword("isolation level", int(l))
	}
	return w.p.Write(kw)
}

// WriteSetVariableValue renders the right-hand side of SET.
func (w *Writer) WriteSetVariableValue(v ast.SetVariableValue) error {
	switch v := v.(type) {
	case nil:
		return writer.Malformed("SET value", "is nil")
	case ast.Ident:
		return w.p.Write(string(v))
	case ast.Value:
		return w.WriteValue(v)
	default:
		return unknown(v)
	}
}

// WriteShowStatementFilter renders the LIKE or WHERE filter of SHOW.
func (w *Writer) WriteShowStatementFilter(f ast.ShowStatementFilter) error {
	switch f := f.(type) {
	case nil:
		return writer.Malformed("SHOW filter", "is nil")
	case *ast.ShowLike:
		return w.p.Writes("LIKE ", lexicon.Quote(f.Pattern))
	case *ast.ShowWhere:
		if err := w.p.Write("WHERE "); err != nil {
			return err
		}
		return w.WriteExpr(f.Expr)
	default:
		return unknown(f)
	}
}
