package writer

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Printer is the mutable state of a single writer: the sink, the indentation
// token and depth, and the length of the line being written.
type Printer struct {
	w       io.Writer
	indent  string
	depth   int
	lineLen int
}

// NewPrinter returns a Printer writing to w that repeats indent once per
// indentation level.
func NewPrinter(indent string, w io.Writer) *Printer {
	return &Printer{w: w, indent: indent}
}

// Write appends s to the sink. Sink failures are returned as *IOError.
func (p *Printer) Write(s string) error {
	if s == "" {
		return nil
	}

	if _, err := io.WriteString(p.w, s); err != nil {
		return &IOError{Err: err}
	}

	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		p.lineLen = utf8.RuneCountInString(s[i+1:])
	} else {
		p.lineLen += utf8.RuneCountInString(s)
	}

	return nil
}

// Writes writes each fragment in order, stopping at the first failure.
func (p *Printer) Writes(parts ...string) error {
	for _, s := range parts {
		if err := p.Write(s); err != nil {
			return err
		}
	}
	return nil
}

// NewLine starts a new line.
func (p *Printer) NewLine() error {
	return p.Write("\n")
}

// Prefix writes the indentation token once per level of depth.
func (p *Printer) Prefix() error {
	return p.Write(strings.Repeat(p.indent, p.depth))
}

// Line starts a new line and writes the current prefix.
func (p *Printer) Line() error {
	if err := p.NewLine(); err != nil {
		return err
	}
	return p.Prefix()
}

// Indented runs fn one indentation level deeper. The level is restored when
// fn returns, whether or not it failed.
func (p *Printer) Indented(fn func() error) error {
	p.depth++
	defer func() { p.depth-- }()
	return fn()
}

// Depth is the current indentation level.
func (p *Printer) Depth() int {
	return p.depth
}

// LineLen is the number of characters written since the last newline.
func (p *Printer) LineLen() int {
	return p.lineLen
}

// List renders items separated by sep.
func List[T any](p *Printer, sep string, items []T, fn func(T) error) error {
	for i, item := range items {
		if i > 0 {
			if err := p.Write(sep); err != nil {
				return err
			}
		}
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}
