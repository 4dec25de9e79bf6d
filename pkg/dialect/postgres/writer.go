package postgres

import (
	"fmt"
	"io"

	"github.com/pseudomuto/sqlgen/pkg/ast"
	"github.com/pseudomuto/sqlgen/pkg/writer"
)

// Dialect is the name of this dialect.
const Dialect = "postgres"

// Writer renders syntax trees as PostgreSQL. It is not safe for concurrent use.
type Writer struct {
	p *writer.Printer
}

var _ writer.SQLWriter = (*Writer)(nil)

// New returns a Writer that writes to w, indenting nested blocks with indent.
func New(indent string, w io.Writer) *Writer {
	return &Writer{p: writer.NewPrinter(indent, w)}
}

// Dialect returns the registered name of this writer.
func (w *Writer) Dialect() string {
	return Dialect
}

// Depth is the current indentation level.
func (w *Writer) Depth() int {
	return w.p.Depth()
}

// LineLen is the length of the line currently being written.
func (w *Writer) LineLen() int {
	return w.p.LineLen()
}

func unsupported(construct string, hint ...string) error {
	return writer.Unsupported(Dialect, construct, hint...)
}

func unknown(node any) error {
	return writer.UnknownVariant(Dialect, node)
}

func unknownKeyword(kind string, v int) error {
	return unsupported(fmt.Sprintf("%s %d", kind, v))
}

func (w *Writer) writeIdents(sep string, idents []ast.Ident) error {
	return writer.List(w.p, sep, idents, func(id ast.Ident) error {
		return w.p.Write(string(id))
	})
}

func (w *Writer) writeExprs(exprs []ast.Expr) error {
	return writer.List(w.p, ", ", exprs, w.WriteExpr)
}

// parens renders fn between parentheses.
func (w *Writer) parens(fn func() error) error {
	if err := w.p.Write("("); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return w.p.Write(")")
}

// subquery renders q between parentheses, one level deeper.
func (w *Writer) subquery(q *ast.Query) error {
	if q == nil {
		return writer.Malformed("subquery", "is nil")
	}
	return w.parens(func() error {
		return w.p.Indented(func() error {
			return w.WriteQuery(q)
		})
	})
}
