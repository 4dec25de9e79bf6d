// Package lexicon holds the fixed tables shared by the dialect writers:
// operator tokens and precedence, keyword spellings of the closed enums, and
// literal quoting.
//
// Lookups report whether the value is known. Writers turn a miss into an
// unsupported construct error rather than falling back to some default text.
package lexicon
