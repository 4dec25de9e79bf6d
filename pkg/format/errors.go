package format

import (
	"fmt"
	"strings"
)

// StatementError is a single failed statement of a batch. Index is 1-based.
type StatementError struct {
	Index int
	Err   error
}

func (e StatementError) Error() string {
	return fmt.Sprintf("statement %d: %v", e.Index, e.Err)
}

func (e StatementError) Unwrap() error {
	return e.Err
}

// BatchError is returned when ContinueOnError is set and at least one
// statement could not be rendered.
type BatchError struct {
	Failures []StatementError
}

func (e *BatchError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("%d statement(s) failed: %s", len(e.Failures), strings.Join(msgs, "; "))
}

// Unwrap exposes every failure to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
