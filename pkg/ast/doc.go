// Package ast defines the SQL syntax tree rendered by the dialect writers.
//
// Every node category is a sealed interface: variants are the pointer types in
// this package that implement the category's unexported marker method. Closed
// keyword sets (operators, date-time fields, object types, ...) are small
// integer enums.
//
// Trees are owned by the caller and never modified by a writer. They are
// usually produced by the parser package, but can be built directly:
//
//	stmt := &ast.Query{
//		Body: &ast.Select{
//			Projection: []ast.SelectItem{
//				&ast.UnnamedExpr{Expr: ast.Ident("id").Expr()},
//			},
//			From: []ast.TableWithJoins{
//				{Relation: &ast.Table{Name: ast.Name("dbo", "users")}},
//			},
//		},
//	}
package ast
