package postgres

import (
	"github.com/pseudomuto/sqlgen/pkg/ast"
	"github.com/pseudomuto/sqlgen/pkg/lexicon"
	"github.com/pseudomuto/sqlgen/pkg/writer"
)

// WriteQuery renders a full query, including CTEs and row limiting.
func (w *Writer) WriteQuery(q *ast.Query) error {
	if q == nil {
		return writer.Malformed("query", "is nil")
	}
	if q.Body == nil {
		return writer.Malformed("query", "has no body")
	}
	if err := checkRowLimits(q); err != nil {
		return err
	}

	if len(q.With) > 0 {
		if err := w.p.Write("WITH "); err != nil {
			return err
		}
		if err := writer.List(w.p, ", ", q.With, w.WriteCte); err != nil {
			return err
		}
		if err := w.p.Line(); err != nil {
			return err
		}
	}

	if err := w.WriteSetExpr(q.Body); err != nil {
		return err
	}

	if len(q.OrderBy) > 0 {
		if err := w.p.Line(); err != nil {
			return err
		}
		if err := w.p.Write("ORDER BY "); err != nil {
			return err
		}
		if err := writer.List(w.p, ", ", q.OrderBy, w.WriteOrderByExpr); err != nil {
			return err
		}
	}

	if q.Limit != nil {
		if err := w.p.Line(); err != nil {
			return err
		}
		if err := w.p.Write("LIMIT "); err != nil {
			return err
		}
		if err := w.WriteExpr(q.Limit); err != nil {
			return err
		}
	}

	if q.Offset != nil {
		if err := w.p.Line(); err != nil {
			return err
		}
		if err := w.p.Write("OFFSET "); err != nil {
			return err
		}
		if err := w.WriteExpr(q.Offset); err != nil {
			return err
		}
		if err := w.p.Write(" ROWS"); err != nil {
			return err
		}
	}

	if q.Fetch != nil {
		if err := w.p.Line(); err != nil {
			return err
		}
		return w.WriteFetch(q.Fetch)
	}

	return nil
}

// checkRowLimits rejects LIMIT combined with FETCH, and WITH TIES without an
// ORDER BY.
func checkRowLimits(q *ast.Query) error {
	switch {
	case q.Limit != nil && q.Fetch != nil:
		return unsupported("LIMIT together with FETCH")
	case q.Fetch != nil && q.Fetch.WithTies && len(q.OrderBy) == 0:
		return unsupported("FETCH WITH TIES without ORDER BY")
	}
	return nil
}

// WriteCte renders one WITH entry.
func (w *Writer) WriteCte(cte ast.Cte) error {
	if err := w.WriteTableAlias(cte.Alias); err != nil {
		return err
	}
	if err := w.p.Write(" AS "); err != nil {
		return err
	}
	return w.subquery(cte.Query)
}

// WriteFetch renders a FETCH clause.
func (w *Writer) WriteFetch(f *ast.Fetch) error {
	if f.Percent {
		return unsupported("FETCH PERCENT")
	}

	if err := w.p.Write("FETCH FIRST "); err != nil {
		return err
	}
	if f.Quantity == nil {
		if err := w.p.Write("ROW"); err != nil {
			return err
		}
	} else {
		if err := w.WriteExpr(f.Quantity); err != nil {
			return err
		}
		if err := w.p.Write(" ROWS"); err != nil {
			return err
		}
	}

	if f.WithTies {
		return w.p.Write(" WITH TIES")
	}
	return w.p.Write(" ONLY")
}

// WriteSetExpr renders a query body.
func (w *Writer) WriteSetExpr(s ast.SetExpr) error {
	switch s := s.(type) {
	case nil:
		return writer.Malformed("query body", "is nil")
	case *ast.Select:
		return w.WriteSelect(s)
	case *ast.Query:
		return w.subquery(s)
	case *ast.SetOperation:
		return w.writeSetOperation(s)
	case *ast.Values:
		return w.WriteValues(s)
	default:
		return unknown(s)
	}
}

func setPrecedence(s ast.SetExpr) int {
	op, ok := s.(*ast.SetOperation)
	switch {
	case !ok:
		return 3
	case op.Op == ast.Intersect:
		return 2
	default:
		return 1
	}
}

func (w *Writer) writeSetOperation(s *ast.SetOperation) error {
	if _, ok := lexicon.SetOperator(s.Op); !ok {
		return unknownKeyword("set operator", int(s.Op))
	}
	if s.Left == nil || s.Right == nil {
		return writer.Malformed("set operation", "is missing an operand")
	}

	operand := func(e ast.SetExpr, wrap bool) error {
		if !wrap {
			return w.WriteSetExpr(e)
		}
		return w.parens(func() error {
			return w.p.Indented(func() error { return w.WriteSetExpr(e) })
		})
	}

	prec := setPrecedence(s)
	if err := operand(s.Left, setPrecedence(s.Left) < prec); err != nil {
		return err
	}
	if err := w.p.Line(); err != nil {
		return err
	}
	if err := w.WriteSetOperator(s.Op); err != nil {
		return err
	}
	if s.All {
		if err := w.p.Write(" ALL"); err != nil {
			return err
		}
	}
	if err := w.p.Line(); err != nil {
		return err
	}

	_, nested := s.Right.(*ast.SetOperation)
	return operand(s.Right, nested)
}

// WriteSetOperator renders UNION, EXCEPT or INTERSECT.
func (w *Writer) WriteSetOperator(op ast.SetOperator) error {
	kw, ok := lexicon.SetOperator(op)
	if !ok {
		return unknownKeyword("set operator", int(op))
	}
	return w.p.Write(kw)
}

// WriteValues renders a VALUES list.
func (w *Writer) WriteValues(v *ast.Values) error {
	if len(v.Rows) == 0 {
		return writer.Malformed("VALUES", "has no rows")
	}

	if err := w.p.Write("VALUES "); err != nil {
		return err
	}
	return writer.List(w.p, ", ", v.Rows, func(row []ast.Expr) error {
		if len(row) == 0 {
			return writer.Malformed("VALUES", "has an empty row")
		}
		return w.parens(func() error { return w.writeExprs(row) })
	})
}

// WriteSelect renders SELECT and its clauses, one clause per line.
func (w *Writer) WriteSelect(s *ast.Select) error {
	if len(s.Projection) == 0 {
		return writer.Malformed("SELECT", "has an empty projection")
	}

	if err := w.p.Write("SELECT "); err != nil {
		return err
	}
	if s.Distinct {
		if err := w.p.Write("DISTINCT "); err != nil {
			return err
		}
	}
	if err := writer.List(w.p, ", ", s.Projection, w.WriteSelectItem); err != nil {
		return err
	}

	if len(s.From) > 0 {
		if err := w.clause("FROM "); err != nil {
			return err
		}
		if err := writer.List(w.p, ", ", s.From, w.WriteTableWithJoins); err != nil {
			return err
		}
	}

	if s.Selection != nil {
		if err := w.clause("WHERE "); err != nil {
			return err
		}
		if err := w.WriteExpr(s.Selection); err != nil {
			return err
		}
	}

	if len(s.GroupBy) > 0 {
		if err := w.clause("GROUP BY "); err != nil {
			return err
		}
		if err := w.writeExprs(s.GroupBy); err != nil {
			return err
		}
	}

	if s.Having != nil {
		if err := w.clause("HAVING "); err != nil {
			return err
		}
		return w.WriteExpr(s.Having)
	}

	return nil
}

// clause starts a clause on a new line at the current indentation.
func (w *Writer) clause(kw string) error {
	if err := w.p.Line(); err != nil {
		return err
	}
	return w.p.Write(kw)
}

// WriteSelectItem renders one projection entry.
func (w *Writer) WriteSelectItem(item ast.SelectItem) error {
	switch item := item.(type) {
	case nil:
		return writer.Malformed("select item", "is nil")
	case *ast.UnnamedExpr:
		return w.WriteExpr(item.Expr)
	case *ast.ExprWithAlias:
		if err := w.WriteExpr(item.Expr); err != nil {
			return err
		}
		return w.p.Writes(" AS ", string(item.Alias))
	case *ast.QualifiedWildcard:
		return w.writeQualifiedWildcard(item)
	case *ast.Wildcard:
		return w.p.Write("*")
	default:
		return unknown(item)
	}
}

// WriteOrderByExpr renders an ORDER BY entry.
func (w *Writer) WriteOrderByExpr(o ast.OrderByExpr) error {
	if err := w.WriteExpr(o.Expr); err != nil {
		return err
	}

	switch {
	case o.Asc == nil:
		return nil
	case *o.Asc:
		return w.p.Write(" ASC")
	default:
		return w.p.Write(" DESC")
	}
}
