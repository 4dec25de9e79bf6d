package mssql

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/ast"
	"github.com/pseudomuto/sqlgen/pkg/lexicon"
	"github.com/pseudomuto/sqlgen/pkg/writer"
)

// WriteExpr renders e, parenthesizing operands by precedence.
func (w *Writer) WriteExpr(e ast.Expr) error {
	switch e := e.(type) {
	case nil:
		return writer.Malformed("expression", "is nil")
	case *ast.Identifier:
		return w.p.Write(string(e.Value))
	case *ast.Wildcard:
		return w.p.Write("*")
	case *ast.QualifiedWildcard:
		return w.writeQualifiedWildcard(e)
	case *ast.CompoundIdentifier:
		if len(e.Parts) == 0 {
			return writer.Malformed("compound identifier", "has no parts")
		}
		return w.writeIdents(".", e.Parts)
	case *ast.IsNull:
		return w.writePredicate(e.Expr, func() error { return w.p.Write(" IS NULL") })
	case *ast.IsNotNull:
		return w.writePredicate(e.Expr, func() error { return w.p.Write(" IS NOT NULL") })
	case *ast.InList:
		return w.writeInList(e)
	case *ast.InSubquery:
		return w.writeInSubquery(e)
	case *ast.Between:
		return w.writeBetween(e)
	case *ast.BinaryOp:
		return w.writeBinaryOp(e)
	case *ast.UnaryOp:
		return w.writeUnaryOp(e)
	case ast.Value:
		return w.WriteValue(e)
	case *ast.Function:
		return w.WriteFunction(e)
	case *ast.Exists:
		if e.Query == nil {
			return writer.Malformed("EXISTS", "has no query")
		}
		if err := w.p.Write("EXISTS "); err != nil {
			return err
		}
		return w.subquery(e.Query)
	case *ast.Subquery:
		return w.subquery(e.Query)
	case *ast.Case:
		return unsupported("CASE expression")
	case *ast.Cast:
		return unsupported("CAST expression")
	case *ast.Extract:
		return unsupported("EXTRACT expression")
	case *ast.Collate:
		return unsupported("COLLATE expression")
	case *ast.Nested:
		return unsupported("nested expression")
	default:
		return unknown(e)
	}
}

func (w *Writer) writeQualifiedWildcard(e *ast.QualifiedWildcard) error {
	if len(e.Name) == 0 {
		return writer.Malformed("qualified wildcard", "has no qualifier")
	}
	if err := w.WriteObjectName(e.Name); err != nil {
		return err
	}
	return w.p.Write(".*")
}

// writeOperand renders e, in parentheses when wrap is set.
func (w *Writer) writeOperand(e ast.Expr, wrap bool) error {
	if !wrap || e == nil {
		return w.WriteExpr(e)
	}
	return w.parens(func() error { return w.WriteExpr(e) })
}

// writePredicate renders the operand of IS NULL, IN or BETWEEN followed by
// the rest of the predicate.
func (w *Writer) writePredicate(operand ast.Expr, rest func() error) error {
	if err := w.writeOperand(operand, lexicon.Precedence(operand) <= lexicon.PrecedenceComparison); err != nil {
		return err
	}
	return rest()
}

func (w *Writer) writeNot(negated bool) error {
	if negated {
		return w.p.Write(" NOT")
	}
	return nil
}

func (w *Writer) writeInList(e *ast.InList) error {
	if len(e.List) == 0 {
		return writer.Malformed("IN", "has an empty list")
	}

	return w.writePredicate(e.Expr, func() error {
		if err := w.writeNot(e.Negated); err != nil {
			return err
		}
		if err := w.p.Write(" IN "); err != nil {
			return err
		}
		return w.parens(func() error { return w.writeExprs(e.List) })
	})
}

func (w *Writer) writeInSubquery(e *ast.InSubquery) error {
	if e.Subquery == nil {
		return writer.Malformed("IN", "has no subquery")
	}

	return w.writePredicate(e.Expr, func() error {
		if err := w.writeNot(e.Negated); err != nil {
			return err
		}
		if err := w.p.Write(" IN "); err != nil {
			return err
		}
		return w.subquery(e.Subquery)
	})
}

func (w *Writer) writeBetween(e *ast.Between) error {
	switch {
	case e.Low == nil:
		return writer.Malformed("BETWEEN", "is missing its lower bound")
	case e.High == nil:
		return writer.Malformed("BETWEEN", "is missing its upper bound")
	}

	bound := func(b ast.Expr) error {
		return w.writeOperand(b, lexicon.Precedence(b) <= lexicon.PrecedenceComparison)
	}

	return w.writePredicate(e.Expr, func() error {
		if err := w.writeNot(e.Negated); err != nil {
			return err
		}
		if err := w.p.Write(" BETWEEN "); err != nil {
			return err
		}
		if err := bound(e.Low); err != nil {
			return err
		}
		if err := w.p.Write(" AND "); err != nil {
			return err
		}
		return bound(e.High)
	})
}

func (w *Writer) writeBinaryOp(e *ast.BinaryOp) error {
	tok, ok := lexicon.BinaryOperator(e.Op)
	if !ok {
		return unknownKeyword("binary operator", int(e.Op))
	}
	if e.Left == nil || e.Right == nil {
		return writer.Malformed("binary operation", "is missing an operand")
	}

	prec := lexicon.BinaryPrecedence(e.Op)
	left := lexicon.Precedence(e.Left)
	wrapLeft := left < prec || (left == prec && !lexicon.Associative(e.Op))

	if err := w.writeOperand(e.Left, wrapLeft); err != nil {
		return err
	}
	if err := w.p.Writes(" ", tok, " "); err != nil {
		return err
	}
	return w.writeOperand(e.Right, lexicon.Precedence(e.Right) <= prec)
}

func (w *Writer) writeUnaryOp(e *ast.UnaryOp) error {
	tok, ok := lexicon.UnaryOperator(e.Op)
	if !ok {
		return unknownKeyword("unary operator", int(e.Op))
	}
	if e.Expr == nil {
		return writer.Malformed("unary operation", "is missing its operand")
	}

	if err := w.p.Writes(tok, " "); err != nil {
		return err
	}
	return w.writeOperand(e.Expr, lexicon.Precedence(e.Expr) < lexicon.UnaryPrecedence(e.Op))
}

// WriteValue renders a literal.
func (w *Writer) WriteValue(v ast.Value) error {
	if v == nil {
		return writer.Malformed("literal", "is nil")
	}
	if iv, ok := v.(*ast.Interval); ok {
		if err := checkIntervalFields(iv); err != nil {
			return err
		}
	}

	lit, err := lexicon.Literal(v)
	if err != nil {
		if errors.Is(err, lexicon.ErrUnknownValue) {
			return unknown(v)
		}
		return writer.Malformed("literal", err.Error())
	}
	return w.p.Write(lit)
}

func checkIntervalFields(iv *ast.Interval) error {
	if _, ok := lexicon.DateTimeField(iv.LeadingField); !ok {
		return unknownKeyword("date-time field", int(iv.LeadingField))
	}
	if iv.LastField == nil {
		if iv.FractionalSecondsPrecision != nil {
			return writer.Malformed("INTERVAL", "has a fractional seconds precision but no last field")
		}
		return nil
	}
	if _, ok := lexicon.DateTimeField(*iv.LastField); !ok {
		return unknownKeyword("date-time field", int(*iv.LastField))
	}
	return nil
}

// WriteFunction renders a function call and its OVER clause.
func (w *Writer) WriteFunction(f *ast.Function) error {
	if err := w.WriteObjectName(f.Name); err != nil {
		return err
	}

	err := w.parens(func() error {
		if f.Distinct {
			if err := w.p.Write("DISTINCT "); err != nil {
				return err
			}
		}
		return w.writeExprs(f.Args)
	})
	if err != nil {
		return err
	}

	if f.Over == nil {
		return nil
	}
	if err := w.p.Write(" OVER "); err != nil {
		return err
	}
	return w.parens(func() error { return w.WriteWindowSpec(f.Over) })
}

// WriteWindowSpec renders the contents of an OVER clause.
func (w *Writer) WriteWindowSpec(s *ast.WindowSpec) error {
	sep := ""
	clause := func(kw string) error {
		err := w.p.Writes(sep, kw)
		sep = " "
		return err
	}

	if len(s.PartitionBy) > 0 {
		if err := clause("PARTITION BY "); err != nil {
			return err
		}
		if err := w.writeExprs(s.PartitionBy); err != nil {
			return err
		}
	}

	if len(s.OrderBy) > 0 {
		if err := clause("ORDER BY "); err != nil {
			return err
		}
		if err := writer.List(w.p, ", ", s.OrderBy, w.WriteOrderByExpr); err != nil {
			return err
		}
	}

	if s.WindowFrame != nil {
		if err := clause(""); err != nil {
			return err
		}
		return w.WriteWindowFrame(s.WindowFrame)
	}

	return nil
}

// WriteWindowFrame renders ROWS, RANGE or GROUPS bounds.
func (w *Writer) WriteWindowFrame(f *ast.WindowFrame) error {
	bounds := []ast.WindowFrameBound{f.StartBound}
	if f.EndBound != nil {
		bounds = append(bounds, *f.EndBound)
	}

	// T-SQL only allows UNBOUNDED and CURRENT ROW in RANGE frames.
	if f.Units == ast.Range {
		for _, b := range bounds {
			if b.Kind != ast.CurrentRow && b.Offset != nil {
				return unsupported("RANGE frame with a numeric offset", "use ROWS")
			}
		}
	}

	if err := w.WriteWindowFrameUnits(f.Units); err != nil {
		return err
	}

	if f.EndBound == nil {
		if err := w.p.Write(" "); err != nil {
			return err
		}
		return w.WriteWindowFrameBound(f.StartBound)
	}

	if err := w.p.Write(" BETWEEN "); err != nil {
		return err
	}
	if err := w.WriteWindowFrameBound(f.StartBound); err != nil {
		return err
	}
	if err := w.p.Write(" AND "); err != nil {
		return err
	}
	return w.WriteWindowFrameBound(*f.EndBound)
}

// WriteWindowFrameBound renders one end of a window frame.
func (w *Writer) WriteWindowFrameBound(b ast.WindowFrameBound) error {
	var direction string
	switch b.Kind {
	case ast.CurrentRow:
		return w.p.Write("CURRENT ROW")
	case ast.Preceding:
		direction = " PRECEDING"
	case ast.Following:
		direction = " FOLLOWING"
	default:
		return unknownKeyword("window frame bound", int(b.Kind))
	}

	offset := "UNBOUNDED"
	if b.Offset != nil {
		offset = strconv.FormatUint(*b.Offset, 10)
	}
	return w.p.Writes(offset, direction)
}

// WriteWindowFrameUnits renders the frame units keyword.
func (w *Writer) WriteWindowFrameUnits(u ast.WindowFrameUnits) error {
	if u == ast.Groups {
		return unsupported("GROUPS window frame", "use ROWS or RANGE")
	}

	kw, ok := lexicon.WindowFrameUnits(u)
	if !ok {
		return unknownKeyword("window frame units", int(u))
	}
	return w.p.Write(kw)
}

// WriteDateTimeField renders a field name for EXTRACT and INTERVAL.
func (w *Writer) WriteDateTimeField(f ast.DateTimeField) error {
	kw, ok := lexicon.DateTimeField(f)
	if !ok {
		return unknownKeyword("date-time field", int(f))
	}
	return w.p.Write(kw)
}

// WriteBinaryOperator renders the token for op.
func (w *Writer) WriteBinaryOperator(op ast.BinaryOperator) error {
	tok, ok := lexicon.BinaryOperator(op)
	if !ok {
		return unknownKeyword("binary operator", int(op))
	}
	return w.p.Write(tok)
}

// WriteUnaryOperator renders the token for op.
func (w *Writer) WriteUnaryOperator(op ast.UnaryOperator) error {
	tok, ok := lexicon.UnaryOperator(op)
	if !ok {
		return unknownKeyword("unary operator", int(op))
	}
	return w.p.Write(tok)
}

// WriteObjectName renders a dot separated name.
func (w *Writer) WriteObjectName(name ast.ObjectName) error {
	if len(name) == 0 {
		return writer.Malformed("object name", "has no parts")
	}
	return w.writeIdents(".", name)
}
