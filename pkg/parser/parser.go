package parser

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/ast"
)

// reserved words never lex as identifiers. Words that only appear in fixed
// positions (KEY, LEVEL, READ, ...) stay identifiers and are matched by
// literal.
var reserved = []string{
	"ADD", "ALL", "ALTER", "AND", "APPLY", "AS", "ASC", "BETWEEN", "BY",
	"CASCADE", "CASE", "CAST", "CHECK", "COLLATE", "COLUMN", "CONSTRAINT",
	"CREATE", "CROSS", "CURRENT", "DATE", "DEFAULT", "DELETE", "DESC",
	"DISTINCT", "DROP", "ELSE", "END", "EXCEPT", "EXISTS", "EXTERNAL",
	"EXTRACT", "FALSE", "FETCH", "FIRST", "FOLLOWING", "FOREIGN", "FROM",
	"FULL", "GROUP", "GROUPS", "HAVING", "IF", "IN", "INNER", "INSERT",
	"INTERSECT", "INTERVAL", "INTO", "IS", "JOIN", "LATERAL", "LEFT", "LIKE",
	"LIMIT", "MATERIALIZED", "NATURAL", "NEXT", "NOT", "NULL", "OFFSET", "ON",
	"ONLY", "OR", "ORDER", "OUTER", "OVER", "PARTITION", "PERCENT",
	"PRECEDING", "PRIMARY", "RANGE", "REFERENCES", "RENAME", "RIGHT", "ROW",
	"ROWS", "SELECT", "SET", "SHOW", "TABLE", "THEN", "TIES", "TIME",
	"TIMESTAMP", "TO", "TRUE", "UNBOUNDED", "UNION", "UNIQUE", "UPDATE",
	"USING", "VALUES", "VIEW", "WHEN", "WHERE", "WITH",
}

var (
	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "NString", Pattern: `[nN]'([^']|'')*'`},
		{Name: "HexString", Pattern: `[xX]'[0-9a-fA-F]*'`},
		{Name: "String", Pattern: `'([^']|'')*'`},
		{Name: "QuotedIdent", Pattern: `"([^"]|"")+"|\[[^\]]+\]`},
		{Name: "Number", Pattern: `(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`},
		{Name: "Keyword", Pattern: `(?i)\b(?:` + strings.Join(reserved, "|") + `)\b`},
		{Name: "Ident", Pattern: `[a-zA-Z_@#][a-zA-Z0-9_$@#]*`},
		{Name: "Operator", Pattern: `<>|!=|<=|>=`},
		{Name: "Punct", Pattern: `[(),.;=+\-*/%<>\[\]]`},
	})

	sqlParser = participle.MustBuild[SQL](
		participle.Lexer(sqlLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.CaseInsensitive("Keyword", "Ident"),
		participle.UseLookahead(8),
	)
)

type (
	// SQL is a script of statements separated by semicolons.
	SQL struct {
		Statements []*Statement `parser:"';'* (@@ ';'*)*"`
	}

	Statement struct {
		Query  *Query          `parser:"  @@"`
		Insert *InsertStmt     `parser:"| @@"`
		Update *UpdateStmt     `parser:"| @@"`
		Delete *DeleteStmt     `parser:"| @@"`
		Create *CreateStmt     `parser:"| @@"`
		Alter  *AlterTableStmt `parser:"| @@"`
		Drop   *DropStmt       `parser:"| @@"`
		Set    *SetStmt        `parser:"| @@"`
		Show   *ShowStmt       `parser:"| @@"`
		Start  *StartStmt      `parser:"| @@"`
		End    *EndStmt        `parser:"| @@"`
	}

	// ObjectName is a dotted name such as schema.table.
	ObjectName struct {
		Parts []string `parser:"@(Ident | QuotedIdent) ('.' @(Ident | QuotedIdent))*"`
	}
)

// Parse reads every statement from r.
func Parse(r io.Reader) ([]ast.Statement, error) {
	script, err := sqlParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	return script.toAST()
}

// ParseString parses the statements in sql.
func ParseString(sql string) ([]ast.Statement, error) {
	return Parse(strings.NewReader(sql))
}

// ParseFile parses the statements in the file at path. Parse errors carry the
// file name in their position.
func ParseFile(path string) ([]ast.Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	script, err := sqlParser.Parse(path, f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	return script.toAST()
}

func (s *SQL) toAST() ([]ast.Statement, error) {
	stmts := make([]ast.Statement, 0, len(s.Statements))
	for i, stmt := range s.Statements {
		converted, err := stmt.toAST()
		if err != nil {
			return nil, errors.Wrapf(err, "statement %d", i+1)
		}
		stmts = append(stmts, converted)
	}

	return stmts, nil
}

func (s *Statement) toAST() (ast.Statement, error) {
	switch {
	case s.Query != nil:
		return s.Query.toAST()
	case s.Insert != nil:
		return s.Insert.toAST()
	case s.Update != nil:
		return s.Update.toAST()
	case s.Delete != nil:
		return s.Delete.toAST()
	case s.Create != nil:
		return s.Create.toAST()
	case s.Alter != nil:
		return s.Alter.toAST()
	case s.Drop != nil:
		return s.Drop.toAST()
	case s.Set != nil:
		return s.Set.toAST()
	case s.Show != nil:
		return s.Show.toAST()
	case s.Start != nil:
		return s.Start.toAST()
	case s.End != nil:
		return s.End.toAST(), nil
	default:
		return nil, errors.New("empty statement")
	}
}

func (n *ObjectName) toAST() ast.ObjectName {
	if n == nil {
		return nil
	}
	return ast.Name(n.Parts...)
}

func idents(names []string) []ast.Ident {
	if len(names) == 0 {
		return nil
	}

	out := make([]ast.Ident, len(names))
	for i, n := range names {
		out[i] = ast.Ident(n)
	}
	return out
}

// unquote strips the surrounding single quotes of a string token and collapses
// doubled quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, "''", "'")
}
