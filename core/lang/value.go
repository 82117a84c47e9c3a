package lang

import (
	"strconv"
	"strings"
)

// ValueKind tags the results evaluation can produce.
type ValueKind int

const (
	// Void is the result of commands that only have effects.
	Void ValueKind = iota
	// Str is a single line or block of text.
	Str
	// Num is a numeric result.
	Num
	// List is an ordered collection of strings, displayed one per line.
	List
)

// Value is the result of evaluating an expression.
type Value struct {
	Kind  ValueKind
	Text  string
	Numer float64
	Items []string
}

func VoidValue() Value         { return Value{Kind: Void} }
func StrValue(s string) Value  { return Value{Kind: Str, Text: s} }
func NumValue(n float64) Value { return Value{Kind: Num, Numer: n} }

func ListValue(items []string) Value {
	return Value{Kind: List, Items: items}
}

// Display renders the value for the prompt. Void renders as nothing; lists
// print one element per line.
func (v Value) Display() string {
	switch v.Kind {
	case Str:
		return v.Text
	case Num:
		return strconv.FormatFloat(v.Numer, 'g', -1, 64)
	case List:
		return strings.Join(v.Items, "\n")
	default:
		return ""
	}
}
