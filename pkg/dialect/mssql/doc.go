// Package mssql renders syntax trees as Microsoft SQL Server (T-SQL) text.
//
// Clauses start on their own line at the current indentation, join
// constraints are indented one level below their join:
//
//	SELECT u.id, o.total
//	FROM users AS u
//	INNER JOIN orders AS o
//	    ON u.id = o.user_id
//	WHERE o.total > 100
//
// CASE, CAST, EXTRACT, COLLATE and explicitly nested expressions are not
// rendered by this writer. Neither are constructs T-SQL lacks (LIMIT, SHOW,
// NATURAL joins, LATERAL, CASCADE, ...). All of them fail with an unsupported
// construct error before writing anything for the node.
package mssql
