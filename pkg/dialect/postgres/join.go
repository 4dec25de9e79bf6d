package postgres

import (
	"github.com/pseudomuto/sqlgen/pkg/ast"
	"github.com/pseudomuto/sqlgen/pkg/lexicon"
	"github.com/pseudomuto/sqlgen/pkg/writer"
)

// WriteTableWithJoins renders a FROM entry followed by its joins, one per line.
func (w *Writer) WriteTableWithJoins(t ast.TableWithJoins) error {
	if err := w.WriteTableFactor(t.Relation); err != nil {
		return err
	}

	for _, j := range t.Joins {
		if err := w.p.Line(); err != nil {
			return err
		}
		if err := w.WriteJoin(j); err != nil {
			return err
		}
	}

	return nil
}

// WriteTableFactor renders a table, derived table or nested join.
func (w *Writer) WriteTableFactor(t ast.TableFactor) error {
	switch t := t.(type) {
	case nil:
		return writer.Malformed("table factor", "is nil")
	case *ast.Table:
		return w.writeTable(t)
	case *ast.Derived:
		if t.Lateral {
			if err := w.p.Write("LATERAL "); err != nil {
				return err
			}
		}
		if err := w.subquery(t.Subquery); err != nil {
			return err
		}
		return w.writeAlias(t.Alias)
	case *ast.NestedJoin:
		return w.parens(func() error { return w.WriteTableWithJoins(t.TableWithJoins) })
	default:
		return unknown(t)
	}
}

func (w *Writer) writeTable(t *ast.Table) error {
	if len(t.WithHints) > 0 {
		return unsupported("table hints")
	}
	if err := w.WriteObjectName(t.Name); err != nil {
		return err
	}

	if len(t.Args) > 0 {
		if err := w.parens(func() error { return w.writeExprs(t.Args) }); err != nil {
			return err
		}
	}

	return w.writeAlias(t.Alias)
}

func (w *Writer) writeAlias(alias *ast.TableAlias) error {
	if alias == nil {
		return nil
	}
	if err := w.p.Write(" AS "); err != nil {
		return err
	}
	return w.WriteTableAlias(*alias)
}

// WriteTableAlias renders an alias and its optional column list.
func (w *Writer) WriteTableAlias(alias ast.TableAlias) error {
	if alias.Name == "" {
		return writer.Malformed("table alias", "has no name")
	}
	if err := w.p.Write(string(alias.Name)); err != nil {
		return err
	}
	if len(alias.Columns) == 0 {
		return nil
	}
	if err := w.p.Write(" "); err != nil {
		return err
	}
	return w.parens(func() error { return w.writeIdents(", ", alias.Columns) })
}

// WriteJoin renders the join keyword and relation. The ON or USING
// constraint of a join goes on the next line, one level deeper. NATURAL is
// part of the keyword.
func (w *Writer) WriteJoin(j ast.Join) error {
	op := j.Operator
	switch op.Kind {
	case ast.CrossApply:
		return unsupported("CROSS APPLY", "use CROSS JOIN LATERAL")
	case ast.OuterApply:
		return unsupported("OUTER APPLY", "use LEFT OUTER JOIN LATERAL ... ON true")
	}
	if _, ok := lexicon.JoinKeyword(op.Kind); !ok {
		return unknownKeyword("join kind", int(op.Kind))
	}

	switch {
	case op.Kind.Constrained() && op.Constraint == nil:
		return writer.Malformed("JOIN", "requires a constraint")
	case !op.Kind.Constrained() && op.Constraint != nil:
		return writer.Malformed("JOIN", "does not take a constraint")
	}

	if _, natural := op.Constraint.(*ast.Natural); natural {
		if err := w.p.Write("NATURAL "); err != nil {
			return err
		}
	}
	if err := w.WriteJoinOperator(op); err != nil {
		return err
	}
	if err := w.WriteTableFactor(j.Relation); err != nil {
		return err
	}
	if _, natural := op.Constraint.(*ast.Natural); natural || op.Constraint == nil {
		return nil
	}

	return w.p.Indented(func() error {
		if err := w.p.Line(); err != nil {
			return err
		}
		return w.WriteJoinConstraint(op.Constraint)
	})
}

// WriteJoinOperator renders the join keywords for op.
func (w *Writer) WriteJoinOperator(op ast.JoinOperator) error {
	kw, ok := lexicon.JoinKeyword(op.Kind)
	if !ok {
		return unknownKeyword("join kind", int(op.Kind))
	}
	return w.p.Write(kw)
}

// WriteJoinConstraint renders ON or USING.
func (w *Writer) WriteJoinConstraint(c ast.JoinConstraint) error {
	switch c := c.(type) {
	case nil:
		return writer.Malformed("join constraint", "is nil")
	case *ast.On:
		if err := w.p.Write("ON "); err != nil {
			return err
		}
		return w.WriteExpr(c.Expr)
	case *ast.Using:
		if len(c.Columns) == 0 {
			return writer.Malformed("USING", "has no columns")
		}
		if err := w.p.Write("USING "); err != nil {
			return err
		}
		return w.parens(func() error { return w.writeIdents(", ", c.Columns) })
	case *ast.Natural:
		return nil
	default:
		return unknown(c)
	}
}
