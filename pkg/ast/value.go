package ast

// Value is a literal. Values are expressions and valid SET right-hand sides.
type Value interface {
	Expr
	SetVariableValue
	isValue()
}

type (
	// Number keeps the literal text exactly as written.
	Number struct {
		Value string
	}

	// SingleQuotedString holds the unescaped string contents.
	SingleQuotedString struct {
		Value string
	}

	NationalString struct {
		Value string
	}

	// HexString holds the hex digits without the X'' wrapper.
	HexString struct {
		Value string
	}

	Boolean struct {
		Value bool
	}

	Date struct {
		Value string
	}

	Time struct {
		Value string
	}

	Timestamp struct {
		Value string
	}

	// Interval is INTERVAL 'value' leading[(p)] [TO last[(fp)]].
	// FractionalSecondsPrecision requires LastField.
	Interval struct {
		Value                      string
		LeadingField               DateTimeField
		LeadingPrecision           *uint64
		LastField                  *DateTimeField
		FractionalSecondsPrecision *uint64
	}

	Null struct{}
)

func (*Number) isValue()             {}
func (*SingleQuotedString) isValue() {}
func (*NationalString) isValue()     {}
func (*HexString) isValue()          {}
func (*Boolean) isValue()            {}
func (*Date) isValue()               {}
func (*Time) isValue()               {}
func (*Timestamp) isValue()          {}
func (*Interval) isValue()           {}
func (*Null) isValue()               {}

func (*Number) isExpr()             {}
func (*SingleQuotedString) isExpr() {}
func (*NationalString) isExpr()     {}
func (*HexString) isExpr()          {}
func (*Boolean) isExpr()            {}
func (*Date) isExpr()               {}
func (*Time) isExpr()               {}
func (*Timestamp) isExpr()          {}
func (*Interval) isExpr()           {}
func (*Null) isExpr()               {}

func (*Number) isSetVariableValue()             {}
func (*SingleQuotedString) isSetVariableValue() {}
func (*NationalString) isSetVariableValue()     {}
func (*HexString) isSetVariableValue()          {}
func (*Boolean) isSetVariableValue()            {}
func (*Date) isSetVariableValue()               {}
func (*Time) isSetVariableValue()               {}
func (*Timestamp) isSetVariableValue()          {}
func (*Interval) isSetVariableValue()           {}
func (*Null) isSetVariableValue()               {}

// Uint returns a pointer to v, for optional precisions and offsets.
func Uint(v uint64) *uint64 {
	return &v
}
