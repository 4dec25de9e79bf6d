package writer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIO matches every IOError.
	ErrIO = errors.New("sink write failed")
	// ErrUnsupported matches every UnsupportedConstructError.
	ErrUnsupported = errors.New("unsupported construct")
	// ErrMalformed matches every MalformedNodeError.
	ErrMalformed = errors.New("malformed node")
)

// IOError is returned when the sink fails a write.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", ErrIO, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// UnsupportedConstructError is returned for nodes a dialect cannot render.
type UnsupportedConstructError struct {
	Dialect   string
	Construct string
	Hint      string
}

func (e *UnsupportedConstructError) Error() string {
	msg := fmt.Sprintf("%s: %s is not supported by %s", ErrUnsupported, e.Construct, e.Dialect)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *UnsupportedConstructError) Is(target error) bool {
	return target == ErrUnsupported
}

// MalformedNodeError is returned for nodes whose fields are in a combination
// the grammar does not allow.
type MalformedNodeError struct {
	Node   string
	Reason string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrMalformed, e.Node, e.Reason)
}

func (e *MalformedNodeError) Is(target error) bool {
	return target == ErrMalformed
}

// Unsupported returns an UnsupportedConstructError. The optional hint
// suggests an alternative construct.
func Unsupported(dialect, construct string, hint ...string) error {
	err := &UnsupportedConstructError{Dialect: dialect, Construct: construct}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// UnknownVariant reports a node the dialect does not know about at all.
func UnknownVariant(dialect string, node any) error {
	return Unsupported(dialect, fmt.Sprintf("%T", node))
}

// Malformed returns a MalformedNodeError.
func Malformed(node, reason string) error {
	return &MalformedNodeError{Node: node, Reason: reason}
}
