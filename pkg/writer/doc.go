// Package writer defines the contract every SQL dialect writer implements,
// the per-writer render state and the error kinds renderers return.
//
// A writer has one method per syntax tree category. Each method appends the
// SQL text for a node to the writer's sink, in a fixed order, and recurses into
// children through the same writer. Errors are returned to the caller
// unmodified:
//
//   - IOError: the sink rejected a write. Text already written stays written.
//   - UnsupportedConstructError: the dialect has no rendering for the node.
//   - MalformedNodeError: the node's fields are in an invalid combination.
//
// Use errors.Is with ErrIO, ErrUnsupported or ErrMalformed to classify an
// error, or errors.As to get at the details.
//
// Writers hold mutable formatting state and must not be shared between
// goroutines. Independent writers over independent sinks are safe.
package writer
