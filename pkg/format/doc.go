// Package format renders batches of statements through a dialect writer.
//
// Each statement is rendered into its own buffer first, so a statement that
// fails leaves nothing behind in the output. Successful statements are
// terminated with ";" and separated by a blank line.
//
// Usage:
//
//	stmts, _ := parser.ParseString("SELECT id FROM users; DELETE FROM users WHERE id = 1;")
//
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, stmts...)
//
//	// Skip statements the dialect can't express and report them afterwards
//	opts := format.Defaults
//	opts.Dialect = "postgres"
//	opts.ContinueOnError = true
//
//	var batch *format.BatchError
//	if err := format.Format(&buf, opts, stmts...); errors.As(err, &batch) {
//		for _, f := range batch.Failures {
//			log.Printf("statement %d: %v", f.Index, f.Err)
//		}
//	}
package format
