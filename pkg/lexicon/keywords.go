package lexicon

import "github.com/pseudomuto/sqlgen/pkg/ast"

var dateTimeFields = map[ast.DateTimeField]string{
	ast.Year:   "YEAR",
	ast.Month:  "MONTH",
	ast.Day:    "DAY",
	ast.Hour:   "HOUR",
	ast.Minute: "MINUTE",
	ast.Second: "SECOND",
}

var objectTypes = map[ast.ObjectType]string{
	ast.TableObject:  "TABLE",
	ast.ViewObject:   "VIEW",
	ast.IndexObject:  "INDEX",
	ast.SchemaObject: "SCHEMA",
}

var fileFormats = map[ast.FileFormat]string{
	ast.TextFile:     "TEXTFILE",
	ast.SequenceFile: "SEQUENCEFILE",
	ast.ORC:          "ORC",
	ast.Parquet:      "PARQUET",
	ast.Avro:         "AVRO",
	ast.RCFile:       "RCFILE",
	ast.JSONFile:     "JSONFILE",
}

var frameUnits = map[ast.WindowFrameUnits]string{
	ast.Rows:   "ROWS",
	ast.Range:  "RANGE",
	ast.Groups: "GROUPS",
}

var accessModes = map[ast.TransactionAccessMode]string{
	ast.ReadOnly:  "READ ONLY",
	ast.ReadWrite: "READ WRITE",
}

var isolationLevels = map[ast.TransactionIsolationLevel]string{
	ast.ReadUncommitted: "READ UNCOMMITTED",
	ast.ReadCommitted:   "READ COMMITTED",
	ast.RepeatableRead:  "REPEATABLE READ",
	ast.Serializable:    "SERIALIZABLE",
}

var joinKeywords = map[ast.JoinKind]string{
	ast.InnerJoin:      "INNER JOIN ",
	ast.LeftOuterJoin:  "LEFT OUTER JOIN ",
	ast.RightOuterJoin: "RIGHT OUTER JOIN ",
	ast.FullOuterJoin:  "FULL OUTER JOIN ",
	ast.CrossJoin:      "CROSS JOIN ",
	ast.CrossApply:     "CROSS APPLY ",
	ast.OuterApply:     "OUTER APPLY ",
}

func DateTimeField(f ast.DateTimeField) (string, bool) {
	kw, ok := dateTimeFields[f]
	return kw, ok
}

func ObjectType(t ast.ObjectType) (string, bool) {
	kw, ok := objectTypes[t]
	return kw, ok
}

func FileFormat(f ast.FileFormat) (string, bool) {
	kw, ok := fileFormats[f]
	return kw, ok
}

func WindowFrameUnits(u ast.WindowFrameUnits) (string, bool) {
	kw, ok := frameUnits[u]
	return kw, ok
}

func AccessMode(m ast.TransactionAccessMode) (string, bool) {
	kw, ok := accessModes[m]
	return kw, ok
}

func IsolationLevel(l ast.TransactionIsolationLevel) (string, bool) {
	kw, ok := isolationLevels[l]
	return kw, ok
}

// JoinKeyword returns the keyword phrase that introduces a join of kind k,
// including its trailing space.
func JoinKeyword(k ast.JoinKind) (string, bool) {
	kw, ok := joinKeywords[k]
	return kw, ok
}
