package parser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/ast"
)

type (
	CreateStmt struct {
		Table *CreateTableStmt `parser:"'CREATE' ( @@"`
		View  *CreateViewStmt  `parser:"| @@ )"`
	}

	CreateTableStmt struct {
		External   bool            `parser:"@'EXTERNAL'? 'TABLE'"`
		Name       *ObjectName     `parser:"@@"`
		Elements   []*TableElement `parser:"'(' @@ (',' @@)* ')'"`
		FileFormat *string         `parser:"('STORED' 'AS' @Ident"`
		Location   *string         `parser:" 'LOCATION' @String)?"`
		Options    []*SQLOption    `parser:"('WITH' '(' @@ (',' @@)* ')')?"`
	}

	TableElement struct {
		Constraint *TableConstraint `parser:"  @@"`
		Column     *ColumnDef       `parser:"| @@"`
	}

	ColumnDef struct {
		Name      string          `parser:"@(Ident | QuotedIdent)"`
		Type      *DataType       `parser:"@@"`
		Collation *ObjectName     `parser:"('COLLATE' @@)?"`
		Options   []*ColumnOption `parser:"@@*"`
	}

	ColumnOption struct {
		Name       *string          `parser:"('CONSTRAINT' @(Ident | QuotedIdent))?"`
		NotNull    bool             `parser:"( @('NOT' 'NULL')"`
		Null       bool             `parser:"| @'NULL'"`
		Default    *Expression      `parser:"| 'DEFAULT' @@"`
		Primary    bool             `parser:"| @('PRIMARY' 'KEY')"`
		Unique     bool             `parser:"| @'UNIQUE'"`
		References *ReferenceClause `parser:"| ('FOREIGN' 'KEY')? @@"`
		Check      *Expression      `parser:"| 'CHECK' '(' @@ ')' )"`
	}

	ReferenceClause struct {
		Table   *ObjectName `parser:"'REFERENCES' @@"`
		Columns []string    `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
	}

	TableConstraint struct {
		Name       *string         `parser:"('CONSTRAINT' @(Ident | QuotedIdent))?"`
		Unique     *UniqueSpec     `parser:"( @@"`
		ForeignKey *ForeignKeySpec `parser:"| @@"`
		Check      *Expression     `parser:"| 'CHECK' '(' @@ ')' )"`
	}

	UniqueSpec struct {
		Primary bool     `parser:"( @('PRIMARY' 'KEY') | 'UNIQUE' )"`
		Columns []string `parser:"'(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')'"`
	}

	ForeignKeySpec struct {
		Columns    []string         `parser:"'FOREIGN' 'KEY' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')'"`
		References *ReferenceClause `parser:"@@"`
	}

	SQLOption struct {
		Name  string   `parser:"@(Ident | QuotedIdent) '='"`
		Value *Literal `parser:"@@"`
	}

	// DataType accepts any, possibly qualified, type name followed by
	// optional parameters and array brackets. Known names are mapped onto
	// ast type kinds; everything else becomes a custom type.
	DataType struct {
		Name      []string `parser:"@(Ident | QuotedIdent | 'DATE' | 'TIME' | 'TIMESTAMP' | 'INTERVAL') ('.' @(Ident | QuotedIdent))*"`
		Precision bool     `parser:"@'PRECISION'?"`
		Params    []string `parser:"('(' @(Number | 'MAX') (',' @Number)* ')')?"`
		Array     []string `parser:"( @'[' ']' )*"`
	}

	CreateViewStmt struct {
		Materialized bool         `parser:"@'MATERIALIZED'? 'VIEW'"`
		Name         *ObjectName  `parser:"@@"`
		Options      []*SQLOption `parser:"('WITH' '(' @@ (',' @@)* ')')?"`
		Query        *Query       `parser:"'AS' @@"`
	}

	AlterTableStmt struct {
		Name      *ObjectName `parser:"'ALTER' 'TABLE' @@"`
		Operation *AlterOp    `parser:"@@"`
	}

	AlterOp struct {
		AddConstraint  *TableConstraint `parser:"  'ADD' @@"`
		AddColumn      *ColumnDef       `parser:"| 'ADD' 'COLUMN'? @@"`
		DropConstraint *string          `parser:"| 'DROP' 'CONSTRAINT' @(Ident | QuotedIdent)"`
		DropColumn     *DropColumnOp    `parser:"| 'DROP' @@"`
		RenameColumn   *RenameColumnOp  `parser:"| 'RENAME' @@"`
		RenameTable    *ObjectName      `parser:"| 'RENAME' 'TO' @@"`
	}

	DropColumnOp struct {
		IfExists bool   `parser:"'COLUMN'? @('IF' 'EXISTS')?"`
		Name     string `parser:"@(Ident | QuotedIdent)"`
		Cascade  bool   `parser:"@'CASCADE'?"`
	}

	RenameColumnOp struct {
		OldName string `parser:"'COLUMN'? @(Ident | QuotedIdent)"`
		NewName string `parser:"'TO' @(Ident | QuotedIdent)"`
	}

	DropStmt struct {
		ObjectType string        `parser:"'DROP' @('TABLE' | 'VIEW' | 'INDEX' | 'SCHEMA')"`
		IfExists   bool          `parser:"@('IF' 'EXISTS')?"`
		Names      []*ObjectName `parser:"@@ (',' @@)*"`
		Cascade    bool          `parser:"@'CASCADE'?"`
	}
)

var objectTypes = map[string]ast.ObjectType{
	"TABLE":  ast.TableObject,
	"VIEW":   ast.ViewObject,
	"INDEX":  ast.IndexObject,
	"SCHEMA": ast.SchemaObject,
}

var fileFormats = map[string]ast.FileFormat{
	"TEXTFILE":     ast.TextFile,
	"SEQUENCEFILE": ast.SequenceFile,
	"ORC":          ast.ORC,
	"PARQUET":      ast.Parquet,
	"AVRO":         ast.Avro,
	"RCFILE":       ast.RCFile,
	"JSONFILE":     ast.JSONFile,
}

// simpleTypes take no parameters.
var simpleTypes = map[string]ast.TypeKind{
	"UUID":             ast.UUIDType,
	"UNIQUEIDENTIFIER": ast.UUIDType,
	"CLOB":             ast.ClobType,
	"BLOB":             ast.BlobType,
	"SMALLINT":         ast.SmallIntType,
	"INT":              ast.IntType,
	"INTEGER":          ast.IntType,
	"BIGINT":           ast.BigIntType,
	"REAL":             ast.RealType,
	"DOUBLE":           ast.DoubleType,
	"BOOLEAN":          ast.BooleanType,
	"BOOL":             ast.BooleanType,
	"BIT":              ast.BooleanType,
	"DATE":             ast.DateType,
	"TIME":             ast.TimeType,
	"TIMESTAMP":        ast.TimestampType,
	"DATETIME2":        ast.TimestampType,
	"INTERVAL":         ast.IntervalType,
	"REGCLASS":         ast.RegclassType,
	"TEXT":             ast.TextType,
	"BYTEA":            ast.ByteaType,
}

// sizedTypes take an optional length.
var sizedTypes = map[string]ast.TypeKind{
	"CHAR":      ast.CharType,
	"CHARACTER": ast.CharType,
	"VARCHAR":   ast.VarcharType,
	"BINARY":    ast.BinaryType,
	"VARBINARY": ast.VarbinaryType,
}

func (c *CreateStmt) toAST() (ast.Statement, error) {
	if c.View != nil {
		return c.View.toAST()
	}
	return c.Table.toAST()
}

func (c *CreateTableStmt) toAST() (*ast.CreateTable, error) {
	out := &ast.CreateTable{Name: c.Name.toAST(), External: c.External}
	for _, el := range c.Elements {
		if el.Constraint != nil {
			tc, err := el.Constraint.toAST()
			if err != nil {
				return nil, err
			}
			out.Constraints = append(out.Constraints, tc)
			continue
		}

		col, err := el.Column.toAST()
		if err != nil {
			return nil, err
		}
		out.Columns = append(out.Columns, col)
	}

	if c.FileFormat != nil {
		format, ok := fileFormats[strings.ToUpper(*c.FileFormat)]
		if !ok {
			return nil, errors.Errorf("unknown file format %s", *c.FileFormat)
		}
		out.FileFormat = format
	}
	if c.Location != nil {
		out.Location = unquote(*c.Location)
	}

	out.WithOptions = sqlOptions(c.Options)
	return out, nil
}

func (c *ColumnDef) toAST() (ast.ColumnDef, error) {
	dt, err := c.Type.toAST()
	if err != nil {
		return ast.ColumnDef{}, errors.Wrapf(err, "column %s", c.Name)
	}

	out := ast.ColumnDef{Name: ast.Ident(c.Name), DataType: dt, Collation: c.Collation.toAST()}
	for _, opt := range c.Options {
		converted, err := opt.toAST()
		if err != nil {
			return ast.ColumnDef{}, err
		}
		out.Options = append(out.Options, converted)
	}
	return out, nil
}

func (o *ColumnOption) toAST() (ast.ColumnOptionDef, error) {
	out := ast.ColumnOptionDef{Name: optionalIdent(o.Name)}

	switch {
	case o.NotNull:
		out.Option = &ast.NotNullOption{}
	case o.Null:
		out.Option = &ast.NullOption{}
	case o.Default != nil:
		e, err := o.Default.toAST()
		if err != nil {
			return out, err
		}
		out.Option = &ast.DefaultOption{Expr: e}
	case o.Primary, o.Unique:
		out.Option = &ast.UniqueOption{IsPrimary: o.Primary}
	case o.References != nil:
		out.Option = &ast.ForeignKeyOption{
			ForeignTable:    o.References.Table.toAST(),
			ReferredColumns: idents(o.References.Columns),
		}
	case o.Check != nil:
		e, err := o.Check.toAST()
		if err != nil {
			return out, err
		}
		out.Option = &ast.CheckOption{Expr: e}
	}
	return out, nil
}

func (c *TableConstraint) toAST() (ast.TableConstraint, error) {
	name := optionalIdent(c.Name)

	switch {
	case c.Unique != nil:
		return &ast.UniqueConstraint{Name: name, Columns: idents(c.Unique.Columns), IsPrimary: c.Unique.Primary}, nil
	case c.ForeignKey != nil:
		return &ast.ForeignKeyConstraint{
			Name:            name,
			Columns:         idents(c.ForeignKey.Columns),
			ForeignTable:    c.ForeignKey.References.Table.toAST(),
			ReferredColumns: idents(c.ForeignKey.References.Columns),
		}, nil
	default:
		e, err := c.Check.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.CheckConstraint{Name: name, Expr: e}, nil
	}
}

func sqlOptions(opts []*SQLOption) []ast.SQLOption {
	if len(opts) == 0 {
		return nil
	}

	out := make([]ast.SQLOption, len(opts))
	for i, o := range opts {
		out[i] = ast.SQLOption{Name: ast.Ident(o.Name), Value: o.Value.toAST()}
	}
	return out
}

func optionalIdent(s *string) *ast.Ident {
	if s == nil {
		return nil
	}
	id := ast.Ident(*s)
	return &id
}

func (d *DataType) toAST() (ast.DataType, error) {
	dt, err := d.baseType()
	if err != nil {
		return ast.DataType{}, err
	}

	for range d.Array {
		element := dt
		dt = ast.DataType{Kind: ast.ArrayType, Element: &element}
	}
	return dt, nil
}

func (d *DataType) baseType() (ast.DataType, error) {
	name := strings.ToUpper(strings.Join(d.Name, "."))
	if d.Precision && name != "DOUBLE" {
		return ast.DataType{}, errors.Errorf("PRECISION is only valid after DOUBLE, not %s", name)
	}

	if kind, ok := simpleTypes[name]; ok {
		if len(d.Params) > 0 {
			return ast.DataType{}, errors.Errorf("type %s takes no parameters", name)
		}
		return ast.Type(kind), nil
	}

	params, err := d.params(name)
	if err != nil {
		return ast.DataType{}, err
	}

	if kind, ok := sizedTypes[name]; ok {
		switch {
		case len(params) > 1:
			return ast.DataType{}, errors.Errorf("type %s takes a single length", name)
		case kind == ast.VarcharType && d.isMax():
			return ast.Type(ast.TextType), nil
		case d.isMax():
			return ast.DataType{}, errors.Errorf("MAX is only supported for VARCHAR, not %s", name)
		case len(params) == 1:
			return ast.DataType{Kind: kind, Length: params[0]}, nil
		default:
			return ast.Type(kind), nil
		}
	}

	if d.isMax() {
		return ast.DataType{}, errors.Errorf("MAX is only supported for VARCHAR, not %s", name)
	}

	switch name {
	case "FLOAT":
		if len(params) > 1 {
			return ast.DataType{}, errors.New("type FLOAT takes a single precision")
		}
		dt := ast.Type(ast.FloatType)
		if len(params) == 1 {
			dt.Precision = params[0]
		}
		return dt, nil
	case "DECIMAL", "NUMERIC":
		return withPrecision(name, ast.Type(ast.DecimalType), params)
	default:
		return withPrecision(name, ast.DataType{Kind: ast.CustomType, Custom: ast.Name(d.Name...)}, params)
	}
}

func (d *DataType) isMax() bool {
	return len(d.Params) == 1 && strings.EqualFold(d.Params[0], "MAX")
}

func (d *DataType) params(name string) ([]*uint64, error) {
	if d.isMax() {
		return nil, nil
	}

	out := make([]*uint64, len(d.Params))
	for i, p := range d.Params {
		v, err := optionalUint(&p)
		if err != nil {
			return nil, errors.Wrapf(err, "type %s", name)
		}
		out[i] = v
	}
	return out, nil
}

func withPrecision(name string, dt ast.DataType, params []*uint64) (ast.DataType, error) {
	switch len(params) {
	case 0:
	case 1:
		dt.Precision = params[0]
	case 2:
		dt.Precision, dt.Scale = params[0], params[1]
	default:
		return ast.DataType{}, errors.Errorf("type %s takes at most a precision and scale", name)
	}
	return dt, nil
}

func (c *CreateViewStmt) toAST() (*ast.CreateView, error) {
	q, err := c.Query.toAST()
	if err != nil {
		return nil, err
	}

	return &ast.CreateView{
		Name:         c.Name.toAST(),
		Query:        q,
		Materialized: c.Materialized,
		WithOptions:  sqlOptions(c.Options),
	}, nil
}

func (a *AlterTableStmt) toAST() (*ast.AlterTable, error) {
	op, err := a.Operation.toAST()
	if err != nil {
		return nil, err
	}
	return &ast.AlterTable{Name: a.Name.toAST(), Operation: op}, nil
}

func (o *AlterOp) toAST() (ast.AlterTableOperation, error) {
	switch {
	case o.AddConstraint != nil:
		tc, err := o.AddConstraint.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.AddConstraint{Constraint: tc}, nil
	case o.AddColumn != nil:
		col, err := o.AddColumn.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.AddColumn{Column: col}, nil
	case o.DropConstraint != nil:
		return &ast.DropConstraint{Name: ast.Ident(*o.DropConstraint)}, nil
	case o.DropColumn != nil:
		return &ast.DropColumn{
			Name:     ast.Ident(o.DropColumn.Name),
			IfExists: o.DropColumn.IfExists,
			Cascade:  o.DropColumn.Cascade,
		}, nil
	case o.RenameColumn != nil:
		return &ast.RenameColumn{
			OldName: ast.Ident(o.RenameColumn.OldName),
			NewName: ast.Ident(o.RenameColumn.NewName),
		}, nil
	case o.RenameTable != nil:
		return &ast.RenameTable{Name: o.RenameTable.toAST()}, nil
	default:
		return nil, errors.New("empty ALTER TABLE operation")
	}
}

func (d *DropStmt) toAST() (*ast.Drop, error) {
	out := &ast.Drop{
		ObjectType: objectTypes[strings.ToUpper(d.ObjectType)],
		IfExists:   d.IfExists,
		Cascade:    d.Cascade,
	}
	for _, n := range d.Names {
		out.Names = append(out.Names, n.toAST())
	}
	return out, nil
}
