// Package parser reads a subset of ANSI SQL, with the common MSSQL and
// PostgreSQL extensions, into pkg/ast syntax trees.
//
// The grammar is declared with participle struct tags. Parsed grammar nodes are
// converted into ast nodes before they are returned, so callers never see the
// grammar types:
//
//	stmts, err := parser.ParseString("SELECT id FROM users WHERE active")
//	if err != nil {
//		return err
//	}
//
//	w := mssql.New("    ", os.Stdout)
//	err = w.WriteStatement(stmts[0])
//
// Keywords are reserved and matched case-insensitively. Identifiers keep the
// case and quoting they were written with, both "double quoted" and
// [bracketed] forms are accepted.
package parser
