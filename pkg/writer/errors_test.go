package writer_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/ast"
	. "github.com/pseudomuto/sqlgen/pkg/writer"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{
			name:    "unsupported",
			err:     Unsupported("mssql", "CASE expression"),
			kind:    ErrUnsupported,
			message: "unsupported construct: CASE expression is not supported by mssql",
		},
		{
			name:    "unsupported with hint",
			err:     Unsupported("mssql", "LIMIT", "use OFFSET and FETCH"),
			kind:    ErrUnsupported,
			message: "unsupported construct: LIMIT is not supported by mssql (use OFFSET and FETCH)",
		},
		{
			name:    "unknown variant",
			err:     UnknownVariant("postgres", &ast.Case{}),
			kind:    ErrUnsupported,
			message: "unsupported construct: *ast.Case is not supported by postgres",
		},
		{
			name:    "malformed",
			err:     Malformed("BETWEEN", "is missing its upper bound"),
			kind:    ErrMalformed,
			message: "malformed node: BETWEEN is missing its upper bound",
		},
		{
			name:    "io",
			err:     &IOError{Err: errors.New("broken pipe")},
			kind:    ErrIO,
			message: "sink write failed: broken pipe",
		},
	}

	kinds := []error{ErrIO, ErrUnsupported, ErrMalformed}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, tt.err, tt.message)

			for _, kind := range kinds {
				require.Equal(t, kind == tt.kind, errors.Is(tt.err, kind))
			}

			// wrapping keeps the kind matchable
			wrapped := errors.Wrap(tt.err, "statement 3")
			require.True(t, errors.Is(wrapped, tt.kind))
		})
	}
}

func TestUnsupportedDetails(t *testing.T) {
	err := errors.Wrap(Unsupported("mssql", "LIMIT", "use FETCH"), "failed")

	var u *UnsupportedConstructError
	require.True(t, errors.As(err, &u))
	require.Equal(t, "mssql", u.Dialect)
	require.Equal(t, "LIMIT", u.Construct)
	require.Equal(t, "use FETCH", u.Hint)
}
