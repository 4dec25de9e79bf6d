package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pseudomuto/sqlgen/pkg/ast"
	. "github.com/pseudomuto/sqlgen/pkg/parser"
	"github.com/stretchr/testify/require"
)

func ident(name string) *ast.Ident {
	i := ast.Ident(name)
	return &i
}

func TestCreateTable(t *testing.T) {
	requireAST(t, `
		CREATE TABLE dbo.users (
			id BIGINT PRIMARY KEY,
			email VARCHAR(255) COLLATE Latin1_General_CI_AS NOT NULL UNIQUE,
			team_id INT CONSTRAINT fk_team REFERENCES teams (id),
			score DOUBLE PRECISION DEFAULT 0 CHECK (score >= 0),
			bio VARCHAR(MAX) NULL,
			CONSTRAINT pk_users PRIMARY KEY (id),
			FOREIGN KEY (team_id) REFERENCES teams (id),
			CHECK (id > 0)
		) WITH (fillfactor = 70)
	`, &ast.CreateTable{
		Name: ast.Name("dbo", "users"),
		Columns: []ast.ColumnDef{
			{
				Name:     "id",
				DataType: ast.Type(ast.BigIntType),
				Options:  []ast.ColumnOptionDef{{Option: &ast.UniqueOption{IsPrimary: true}}},
			},
			{
				Name:      "email",
				DataType:  ast.DataType{Kind: ast.VarcharType, Length: ast.Uint(255)},
				Collation: ast.Name("Latin1_General_CI_AS"),
				Options: []ast.ColumnOptionDef{
					{Option: &ast.NotNullOption{}},
					{Option: &ast.UniqueOption{}},
				},
			},
			{
				Name:     "team_id",
				DataType: ast.Type(ast.IntType),
				Options: []ast.ColumnOptionDef{{
					Name:   ident("fk_team"),
					Option: &ast.ForeignKeyOption{ForeignTable: ast.Name("teams"), ReferredColumns: []ast.Ident{"id"}},
				}},
			},
			{
				Name:     "score",
				DataType: ast.Type(ast.DoubleType),
				Options: []ast.ColumnOptionDef{
					{Option: &ast.DefaultOption{Expr: num("0")}},
					{Option: &ast.CheckOption{Expr: bin(id("score"), ast.OpGtEq, num("0"))}},
				},
			},
			{
				Name:     "bio",
				DataType: ast.Type(ast.TextType),
				Options:  []ast.ColumnOptionDef{{Option: &ast.NullOption{}}},
			},
		},
		Constraints: []ast.TableConstraint{
			&ast.UniqueConstraint{Name: ident("pk_users"), Columns: []ast.Ident{"id"}, IsPrimary: true},
			&ast.ForeignKeyConstraint{
				Columns:         []ast.Ident{"team_id"},
				ForeignTable:    ast.Name("teams"),
				ReferredColumns: []ast.Ident{"id"},
			},
			&ast.CheckConstraint{Expr: bin(id("id"), ast.OpGt, num("0"))},
		},
		WithOptions: []ast.SQLOption{{Name: "fillfactor", Value: &ast.Number{Value: "70"}}},
	})
}

func TestCreateExternalTable(t *testing.T) {
	requireAST(t, "CREATE EXTERNAL TABLE logs (line TEXT) STORED AS PARQUET LOCATION 's3://bucket/logs'", &ast.CreateTable{
		Name:       ast.Name("logs"),
		Columns:    []ast.ColumnDef{{Name: "line", DataType: ast.Type(ast.TextType)}},
		External:   true,
		FileFormat: ast.Parquet,
		Location:   "s3://bucket/logs",
	})
}

func TestDataTypes(t *testing.T) {
	tests := map[string]ast.DataType{
		"UNIQUEIDENTIFIER":  ast.Type(ast.UUIDType),
		"char":              ast.Type(ast.CharType),
		"NVARCHAR(20)":      {Kind: ast.CustomType, Custom: ast.Name("NVARCHAR"), Precision: ast.Uint(20)},
		"VARBINARY(16)":     {Kind: ast.VarbinaryType, Length: ast.Uint(16)},
		"FLOAT(24)":         {Kind: ast.FloatType, Precision: ast.Uint(24)},
		"NUMERIC(12)":       {Kind: ast.DecimalType, Precision: ast.Uint(12)},
		"DATETIME2":         ast.Type(ast.TimestampType),
		"TIMESTAMP":         ast.Type(ast.TimestampType),
		"INTERVAL":          ast.Type(ast.IntervalType),
		"BYTEA":             ast.Type(ast.ByteaType),
		"REGCLASS":          ast.Type(ast.RegclassType),
		"public.mood":       {Kind: ast.CustomType, Custom: ast.Name("public", "mood")},
		"INT[]":             {Kind: ast.ArrayType, Element: &ast.DataType{Kind: ast.IntType}},
		"TEXT[][]":          {Kind: ast.ArrayType, Element: &ast.DataType{Kind: ast.ArrayType, Element: &ast.DataType{Kind: ast.TextType}}},
		"DOUBLE PRECISION":  ast.Type(ast.DoubleType),
		"VARCHAR(max)":      ast.Type(ast.TextType),
		"CHARACTER(3)":      {Kind: ast.CharType, Length: ast.Uint(3)},
		"DECIMAL(10, 2)[]":  {Kind: ast.ArrayType, Element: &ast.DataType{Kind: ast.DecimalType, Precision: ast.Uint(10), Scale: ast.Uint(2)}},
		`"Custom Type"(1)`:  {Kind: ast.CustomType, Custom: ast.Name(`"Custom Type"`), Precision: ast.Uint(1)},
		"geography(4, 326)": {Kind: ast.CustomType, Custom: ast.Name("geography"), Precision: ast.Uint(4), Scale: ast.Uint(326)},
	}

	for sql, want := range tests {
		t.Run(sql, func(t *testing.T) {
			stmts, err := ParseString("CREATE TABLE t (c " + sql + ")")
			require.NoError(t, err)

			got := stmts[0].(*ast.CreateTable).Columns[0].DataType
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("unexpected data type (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateView(t *testing.T) {
	requireAST(t, "CREATE MATERIALIZED VIEW active WITH (autovacuum_enabled = false) AS SELECT id FROM users", &ast.CreateView{
		Name:         ast.Name("active"),
		Query:        &ast.Query{Body: selectFrom("users", unnamed(id("id")))},
		Materialized: true,
		WithOptions:  []ast.SQLOption{{Name: "autovacuum_enabled", Value: &ast.Boolean{}}},
	})
}

func TestAlterTable(t *testing.T) {
	tests := map[string]ast.AlterTableOperation{
		"ADD COLUMN age INT": &ast.AddColumn{Column: ast.ColumnDef{Name: "age", DataType: ast.Type(ast.IntType)}},
		"ADD age INT":        &ast.AddColumn{Column: ast.ColumnDef{Name: "age", DataType: ast.Type(ast.IntType)}},
		"ADD CONSTRAINT uq_email UNIQUE (email)": &ast.AddConstraint{
			Constraint: &ast.UniqueConstraint{Name: ident("uq_email"), Columns: []ast.Ident{"email"}},
		},
		"DROP CONSTRAINT uq_email":             &ast.DropConstraint{Name: "uq_email"},
		"DROP COLUMN IF EXISTS age CASCADE":    &ast.DropColumn{Name: "age", IfExists: true, Cascade: true},
		"DROP age":                             &ast.DropColumn{Name: "age"},
		"RENAME COLUMN age TO years":           &ast.RenameColumn{OldName: "age", NewName: "years"},
		"RENAME TO people":                     &ast.RenameTable{Name: ast.Name("people")},
		"ADD PRIMARY KEY (id)":                 &ast.AddConstraint{Constraint: &ast.UniqueConstraint{Columns: []ast.Ident{"id"}, IsPrimary: true}},
		"ADD CONSTRAINT ck CHECK (age > 0)":    &ast.AddConstraint{Constraint: &ast.CheckConstraint{Name: ident("ck"), Expr: bin(id("age"), ast.OpGt, num("0"))}},
		"ADD FOREIGN KEY (team) REFERENCES x ": &ast.AddConstraint{Constraint: &ast.ForeignKeyConstraint{Columns: []ast.Ident{"team"}, ForeignTable: ast.Name("x")}},
	}

	for op, want := range tests {
		t.Run(op, func(t *testing.T) {
			requireAST(t, "ALTER TABLE users "+op, &ast.AlterTable{Name: ast.Name("users"), Operation: want})
		})
	}
}

func TestDrop(t *testing.T) {
	requireAST(t, "DROP TABLE IF EXISTS a, dbo.b CASCADE", &ast.Drop{
		ObjectType: ast.TableObject,
		IfExists:   true,
		Names:      []ast.ObjectName{ast.Name("a"), ast.Name("dbo", "b")},
		Cascade:    true,
	})

	requireAST(t, "drop index idx_users_email", &ast.Drop{
		ObjectType: ast.IndexObject,
		Names:      []ast.ObjectName{ast.Name("idx_users_email")},
	})
}
