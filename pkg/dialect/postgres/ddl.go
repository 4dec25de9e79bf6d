package postgres

import (
	"strconv"

	"github.com/pseudomuto/sqlgen/pkg/ast"
	"github.com/pseudomuto/sqlgen/pkg/lexicon"
	"github.com/pseudomuto/sqlgen/pkg/writer"
)

// WriteColumnDef renders a column name, its type and options.
func (w *Writer) WriteColumnDef(c ast.ColumnDef) error {
	if c.Name == "" {
		return writer.Malformed("column", "has no name")
	}

	if err := w.p.Writes(string(c.Name), " "); err != nil {
		return err
	}
	if err := w.WriteDataType(c.DataType); err != nil {
		return err
	}

	if len(c.Collation) > 0 {
		if err := w.p.Write(" COLLATE "); err != nil {
			return err
		}
		if err := w.WriteObjectName(c.Collation); err != nil {
			return err
		}
	}

	for _, opt := range c.Options {
		if err := w.p.Write(" "); err != nil {
			return err
		}
		if err := w.WriteColumnOptionDef(opt); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeConstraintName(name *ast.Ident) error {
	if name == nil {
		return nil
	}
	return w.p.Writes("CONSTRAINT ", string(*name), " ")
}

// WriteColumnOptionDef renders an option with its optional CONSTRAINT name.
func (w *Writer) WriteColumnOptionDef(opt ast.ColumnOptionDef) error {
	if err := w.writeConstraintName(opt.Name); err != nil {
		return err
	}
	return w.WriteColumnOption(opt.Option)
}

// WriteColumnOption renders a single column option.
func (w *Writer) WriteColumnOption(opt ast.ColumnOption) error {
	switch opt := opt.(type) {
	case nil:
		return writer.Malformed("column option", "is nil")
	case *ast.NullOption:
		return w.p.Write("NULL")
	case *ast.NotNullOption:
		return w.p.Write("NOT NULL")
	case *ast.DefaultOption:
		if err := w.p.Write("DEFAULT "); err != nil {
			return err
		}
		return w.WriteExpr(opt.Expr)
	case *ast.UniqueOption:
		if opt.IsPrimary {
			return w.p.Write("PRIMARY KEY")
		}
		return w.p.Write("UNIQUE")
	case *ast.ForeignKeyOption:
		return w.writeReferences(opt.ForeignTable, opt.ReferredColumns)
	case *ast.CheckOption:
		return w.writeCheck(opt.Expr)
	default:
		return unknown(opt)
	}
}

func (w *Writer) writeReferences(table ast.ObjectName, columns []ast.Ident) error {
	if err := w.p.Write("REFERENCES "); err != nil {
		return err
	}
	if err := w.WriteObjectName(table); err != nil {
		return err
	}
	if len(columns) == 0 {
		return nil
	}
	if err := w.p.Write(" "); err != nil {
		return err
	}
	return w.parens(func() error { return w.writeIdents(", ", columns) })
}

func (w *Writer) writeCheck(e ast.Expr) error {
	if err := w.p.Write("CHECK "); err != nil {
		return err
	}
	return w.parens(func() error { return w.WriteExpr(e) })
}

// WriteDataType renders a column or CAST type.
func (w *Writer) WriteDataType(t ast.DataType) error {
	switch t.Kind {
	case ast.CharType:
		return w.writeSizedType("CHAR", t.Length)
	case ast.VarcharType:
		return w.writeSizedType("VARCHAR", t.Length)
	case ast.FloatType:
		return w.writeSizedType("FLOAT", t.Precision)
	case ast.DecimalType:
		return w.writeNumericType("NUMERIC", t)
	case ast.UUIDType:
		return w.p.Write("UUID")
	case ast.SmallIntType:
		return w.p.Write("SMALLINT")
	case ast.IntType:
		return w.p.Write("INTEGER")
	case ast.BigIntType:
		return w.p.Write("BIGINT")
	case ast.RealType:
		return w.p.Write("REAL")
	case ast.DoubleType:
		return w.p.Write("DOUBLE PRECISION")
	case ast.BooleanType:
		return w.p.Write("BOOLEAN")
	case ast.DateType:
		return w.p.Write("DATE")
	case ast.TimeType:
		return w.p.Write("TIME")
	case ast.TimestampType:
		return w.p.Write("TIMESTAMP")
	case ast.IntervalType:
		return w.p.Write("INTERVAL")
	case ast.RegclassType:
		return w.p.Write("REGCLASS")
	case ast.TextType:
		return w.p.Write("TEXT")
	case ast.ByteaType:
		return w.p.Write("BYTEA")
	case ast.ArrayType:
		if t.Element == nil {
			return writer.Malformed("array type", "has no element type")
		}
		if err := w.WriteDataType(*t.Element); err != nil {
			return err
		}
		return w.p.Write("[]")
	case ast.CustomType:
		if err := w.WriteObjectName(t.Custom); err != nil {
			return err
		}
		return w.writePrecision(t.Precision, t.Scale)
	case ast.ClobType:
		return unsupported("CLOB type", "use TEXT")
	case ast.BlobType:
		return unsupported("BLOB type", "use BYTEA")
	case ast.BinaryType:
		return unsupported("BINARY type", "use BYTEA")
	case ast.VarbinaryType:
		return unsupported("VARBINARY type", "use BYTEA")
	default:
		return unknownKeyword("data type", int(t.Kind))
	}
}

func (w *Writer) writeSizedType(name string, size *uint64) error {
	if err := w.p.Write(name); err != nil {
		return err
	}
	return w.writePrecision(size, nil)
}

func (w *Writer) writeNumericType(name string, t ast.DataType) error {
	if err := w.p.Write(name); err != nil {
		return err
	}
	return w.writePrecision(t.Precision, t.Scale)
}

func (w *Writer) writePrecision(precision, scale *uint64) error {
	if precision == nil {
		if scale != nil {
			return writer.Malformed("data type", "has a scale but no precision")
		}
		return nil
	}

	args := strconv.FormatUint(*precision, 10)
	if scale != nil {
		args += ", " + strconv.FormatUint(*scale, 10)
	}
	return w.p.Writes("(", args, ")")
}

// WriteTableConstraint renders a table-level constraint.
func (w *Writer) WriteTableConstraint(c ast.TableConstraint) error {
	switch c := c.(type) {
	case nil:
		return writer.Malformed("table constraint", "is nil")
	case *ast.UniqueConstraint:
		if len(c.Columns) == 0 {
			return writer.Malformed("UNIQUE constraint", "has no columns")
		}
		if err := w.writeConstraintName(c.Name); err != nil {
			return err
		}
		kw := "UNIQUE "
		if c.IsPrimary {
			kw = "PRIMARY KEY "
		}
		if err := w.p.Write(kw); err != nil {
			return err
		}
		return w.parens(func() error { return w.writeIdents(", ", c.Columns) })
	case *ast.ForeignKeyConstraint:
		if len(c.Columns) == 0 {
			return writer.Malformed("FOREIGN KEY constraint", "has no columns")
		}
		if err := w.writeConstraintName(c.Name); err != nil {
			return err
		}
		if err := w.p.Write("FOREIGN KEY "); err != nil {
			return err
		}
		if err := w.parens(func() error { return w.writeIdents(", ", c.Columns) }); err != nil {
			return err
		}
		if err := w.p.Write(" "); err != nil {
			return err
		}
		return w.writeReferences(c.ForeignTable, c.ReferredColumns)
	case *ast.CheckConstraint:
		if err := w.writeConstraintName(c.Name); err != nil {
			return err
		}
		return w.writeCheck(c.Expr)
	default:
		return unknown(c)
	}
}

// WriteAlterTableOperation renders the operation following ALTER TABLE <name>.
func (w *Writer) WriteAlterTableOperation(op ast.AlterTableOperation) error {
	switch op := op.(type) {
	case nil:
		return writer.Malformed("ALTER TABLE", "has no operation")
	case *ast.AddConstraint:
		if err := w.p.Write("ADD "); err != nil {
			return err
		}
		return w.WriteTableConstraint(op.Constraint)
	case *ast.AddColumn:
		if err := w.p.Write("ADD COLUMN "); err != nil {
			return err
		}
		return w.WriteColumnDef(op.Column)
	case *ast.DropConstraint:
		return w.p.Writes("DROP CONSTRAINT ", string(op.Name))
	case *ast.DropColumn:
		if err := w.p.Write("DROP COLUMN "); err != nil {
			return err
		}
		if op.IfExists {
			if err := w.p.Write("IF EXISTS "); err != nil {
				return err
			}
		}
		if err := w.p.Write(string(op.Name)); err != nil {
			return err
		}
		if op.Cascade {
			return w.p.Write(" CASCADE")
		}
		return nil
	case *ast.RenameColumn:
		return w.p.Writes("RENAME COLUMN ", string(op.OldName), " TO ", string(op.NewName))
	case *ast.RenameTable:
		if err := w.p.Write("RENAME TO "); err != nil {
			return err
		}
		return w.WriteObjectName(op.Name)
	default:
		return unknown(op)
	}
}

// WriteSQLOption renders a name = value option.
func (w *Writer) WriteSQLOption(opt ast.SQLOption) error {
	if err := w.p.Writes(string(opt.Name), " = "); err != nil {
		return err
	}
	return w.WriteValue(opt.Value)
}

// WriteObjectType renders the keyword for a droppable object.
func (w *Writer) WriteObjectType(t ast.ObjectType) error {
	kw, ok := lexicon.ObjectType(t)
	if !ok {
		return unknownKeyword("object type", int(t))
	}
	return w.p.Write(kw)
}

// WriteFileFormat renders the STORED AS format of an external table.
func (w *Writer) WriteFileFormat(f ast.FileFormat) error {
	kw, ok := lexicon.FileFormat(f)
	if !ok {
		return unknownKeyword("file format", int(f))
	}
	return w.p.Write(kw)
}
