package postgres

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
		kw := "SET "
		if s.Local {
			kw = "SET LOCAL "
		}
		if err := w.p.Writes(kw, string(s.Variable), " = "); err != nil {
			return err
		}
		return w.WriteSetVariableValue(s.Value)
	case *ast.ShowVariable:
		if s.Variable == "" {
			return writer.Malformed("SHOW", "has no variable")
		}
		return w.p.Writes("SHOW ", string(s.Variable))
	case *ast.ShowColumns:
		return unsupported("SHOW COLUMNS", "query information_schema.columns")
	case *ast.StartTransaction:
		if err := w.p.Write("START TRANSACTION"); err != nil {
			return err
		}
		if len(s.Modes) == 0 {
			return nil
		}
		if err := w.p.Write(" "); err != nil {
			return err
		}
		return writer.List(w.p, ", ", s.Modes, w.WriteTransactionMode)
	case *ast.SetTransaction:
		if len(s.Modes) == 0 {
			return writer.Malformed("SET TRANSACTION", "has no modes")
		}
		if err := w.p.Write("SET TRANSACTION "); err != nil {
			return err
		}
		return writer.List(w.p, ", ", s.Modes, w.WriteTransactionMode)
	case *ast.Commit:
		return w.writeChained("COMMIT", s.Chain)
	case *ast.Rollback:
		return w.writeChained("ROLLBACK", s.Chain)
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
// deeper than the statement.
func (w *Writer) writeCreateTable(s *ast.CreateTable) error {
	if len(s.Columns) == 0 && len(s.Constraints) == 0 {
		return writer.Malformed("CREATE TABLE", "has no columns")
	}
	if s.External {
		return unsupported("CREATE EXTERNAL TABLE", "use a foreign table")
	}

	if err := w.p.Write("CREATE TABLE "); err != nil {
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

	return w.writeWithOptions(s.WithOptions)
}

func (w *Writer) writeWithOptions(opts []ast.SQLOption) error {
	if len(opts) == 0 {
		return nil
	}
	if err := w.clause("WITH "); err != nil {
		return err
	}
	return w.parens(func() error { return writer.List(w.p, ", ", opts, w.WriteSQLOption) })
}

func (w *Writer) writeCreateView(s *ast.CreateView) error {
	if s.Query == nil {
		return writer.Malformed("CREATE VIEW", "has no query")
	}

	kw := "CREATE VIEW "
	if s.Materialized {
		kw = "CREATE MATERIALIZED VIEW "
	}
	if err := w.p.Write(kw); err != nil {
		return err
	}
	if err := w.WriteObjectName(s.Name); err != nil {
		return err
	}
	if len(s.WithOptions) > 0 {
		if err := w.p.Write(" WITH "); err != nil {
			return err
		}
		err := w.parens(func() error { return writer.List(w.p, ", ", s.WithOptions, w.WriteSQLOption) })
		if err != nil {
			return err
		}
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
	if len(s.Names) == 0 {
		return writer.Malformed("DROP", "has no names")
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
	if err := writer.List(w.p, ", ", s.Names, w.WriteObjectName); err != nil {
		return err
	}
	if s.Cascade {
		return w.p.Write(" CASCADE")
	}
	return nil
}

func (w *Writer) writeChained(kw string, chain bool) error {
	if err := w.p.Write(kw); err != nil {
		return err
	}
	if chain {
		return w.p.Write(" AND CHAIN")
	}
	return nil
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

// WriteTransactionAccessMode renders READ ONLY or READ WRITE.
func (w *Writer) WriteTransactionAccessMode(m ast.TransactionAccessMode) error {
	kw, ok := lexicon.AccessMode(m)
	if !ok {
		return unknownKeyword("access mode", int(m))
	}
	return w.p.Write(kw)
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
