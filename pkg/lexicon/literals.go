package lexicon

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/ast"
)

// ErrUnknownValue is returned by Literal and Interval for values, or interval
// fields, they have no format for.
var ErrUnknownValue = errors.New("unknown literal")

// Quote wraps s in single quotes, doubling embedded quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Literal formats a literal value. Intervals are formatted by Interval.
func Literal(v ast.Value) (string, error) {
	switch v := v.(type) {
	case *ast.Boolean:
		return strconv.FormatBool(v.Value), nil
	case *ast.Number:
		return v.Value, nil
	case *ast.SingleQuotedString:
		return Quote(v.Value), nil
	case *ast.Date:
		return Quote(v.Value), nil
	case *ast.Time:
		return Quote(v.Value), nil
	case *ast.Timestamp:
		return Quote(v.Value), nil
	case *ast.HexString:
		return "X'" + v.Value + "'", nil
	case *ast.NationalString:
		return "n" + Quote(v.Value), nil
	case *ast.Null:
		return "NULL", nil
	case *ast.Interval:
		return Interval(v)
	default:
		return "", errors.Wrapf(ErrUnknownValue, "%T", v)
	}
}

// Interval formats INTERVAL 'value' FIELD[(p)][ TO FIELD[(fp)]].
func Interval(v *ast.Interval) (string, error) {
	leading, ok := DateTimeField(v.LeadingField)
	if !ok {
		return "", errors.Wrapf(ErrUnknownValue, "interval leading field %d", v.LeadingField)
	}

	var sb strings.Builder
	sb.WriteString("INTERVAL ")
	sb.WriteString(Quote(v.Value))
	sb.WriteString(" ")
	sb.WriteString(leading)
	writePrecision(&sb, v.LeadingPrecision)

	if v.LastField != nil {
		last, ok := DateTimeField(*v.LastField)
		if !ok {
			return "", errors.Wrapf(ErrUnknownValue, "interval last field %d", *v.LastField)
		}

		sb.WriteString(" TO ")
		sb.WriteString(last)
		writePrecision(&sb, v.FractionalSecondsPrecision)
	}

	return sb.String(), nil
}

func writePrecision(sb *strings.Builder, p *uint64) {
	if p == nil {
		return
	}
	sb.WriteString("(")
	sb.WriteString(strconv.FormatUint(*p, 10))
	sb.WriteString(")")
}
