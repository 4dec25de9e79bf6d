// Package postgres renders syntax trees as PostgreSQL text. Layout matches the
// mssql writer; the two differ in the constructs each accepts and in how types
// and row limits are spelled.
package postgres
