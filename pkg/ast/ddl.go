package ast

type (
	// CreateTable is CREATE [EXTERNAL] TABLE. External tables carry a file
	// format and location.
	CreateTable struct {
		Name        ObjectName
		Columns     []ColumnDef
		Constraints []TableConstraint
		WithOptions []SQLOption
		External    bool
		FileFormat  FileFormat
		Location    string
	}

	CreateView struct {
		Name         ObjectName
		Query        *Query
		Materialized bool
		WithOptions  []SQLOption
	}

	AlterTable struct {
		Name      ObjectName
		Operation AlterTableOperation
	}

	Drop struct {
		ObjectType ObjectType
		IfExists   bool
		Names      []ObjectName
		Cascade    bool
	}

	// SQLOption is a name = value pair of a WITH (...) list.
	SQLOption struct {
		Name  Ident
		Value Value
	}
)

// ColumnDef declares a single column. A nil Collation means none.
type ColumnDef struct {
	Name      Ident
	DataType  DataType
	Collation ObjectName
	Options   []ColumnOptionDef
}

// ColumnOptionDef is a column option, optionally named with CONSTRAINT.
type ColumnOptionDef struct {
	Name   *Ident
	Option ColumnOption
}

type ColumnOption interface {
	isColumnOption()
}

type (
	NullOption struct{}

	NotNullOption struct{}

	DefaultOption struct {
		Expr Expr
	}

	// UniqueOption is UNIQUE, or PRIMARY KEY when IsPrimary is set.
	UniqueOption struct {
		IsPrimary bool
	}

	ForeignKeyOption struct {
		ForeignTable    ObjectName
		ReferredColumns []Ident
	}

	CheckOption struct {
		Expr Expr
	}
)

func (*NullOption) isColumnOption()       {}
func (*NotNullOption) isColumnOption()    {}
func (*DefaultOption) isColumnOption()    {}
func (*UniqueOption) isColumnOption()     {}
func (*ForeignKeyOption) isColumnOption() {}
func (*CheckOption) isColumnOption()      {}

// TableConstraint is a constraint declared at table level.
type TableConstraint interface {
	isTableConstraint()
}

type (
	UniqueConstraint struct {
		Name      *Ident
		Columns   []Ident
		IsPrimary bool
	}

	ForeignKeyConstraint struct {
		Name            *Ident
		Columns         []Ident
		ForeignTable    ObjectName
		ReferredColumns []Ident
	}

	CheckConstraint struct {
		Name *Ident
		Expr Expr
	}
)

func (*UniqueConstraint) isTableConstraint()     {}
func (*ForeignKeyConstraint) isTableConstraint() {}
func (*CheckConstraint) isTableConstraint()      {}

type AlterTableOperation interface {
	isAlterTableOperation()
}

type (
	AddConstraint struct {
		Constraint TableConstraint
	}

	AddColumn struct {
		Column ColumnDef
	}

	DropConstraint struct {
		Name Ident
	}

	DropColumn struct {
		Name     Ident
		IfExists bool
		Cascade  bool
	}

	RenameColumn struct {
		OldName Ident
		NewName Ident
	}

	RenameTable struct {
		Name ObjectName
	}
)

func (*AddConstraint) isAlterTableOperation()  {}
func (*AddColumn) isAlterTableOperation()      {}
func (*DropConstraint) isAlterTableOperation() {}
func (*DropColumn) isAlterTableOperation()     {}
func (*RenameColumn) isAlterTableOperation()   {}
func (*RenameTable) isAlterTableOperation()    {}

type ObjectType int

const (
	TableObject ObjectType = iota + 1
	ViewObject
	IndexObject
	SchemaObject
)

type FileFormat int

const (
	TextFile FileFormat = iota + 1
	SequenceFile
	ORC
	Parquet
	Avro
	RCFile
	JSONFile
)

// DataType is a column or cast type. Length, Precision and Scale are used by
// the kinds that take them; Custom names user-defined types and Element is the
// element type of an Array.
type DataType struct {
	Kind      TypeKind
	Length    *uint64
	Precision *uint64
	Scale     *uint64
	Custom    ObjectName
	Element   *DataType
}

type TypeKind int

const (
	CharType TypeKind = iota + 1
	VarcharType
	UUIDType
	ClobType
	BinaryType
	VarbinaryType
	BlobType
	DecimalType
	FloatType
	SmallIntType
	IntType
	BigIntType
	RealType
	DoubleType
	BooleanType
	DateType
	TimeType
	TimestampType
	IntervalType
	RegclassType
	TextType
	ByteaType
	CustomType
	ArrayType
)

// Type returns a DataType of the given kind with no parameters.
func Type(kind TypeKind) DataType {
	return DataType{Kind: kind}
}
