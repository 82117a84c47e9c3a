package lang

import "strings"

// NormalizeSlashes rewrites DOS-style backslashes as forward slashes so
// paths entered either way evaluate with UNIX semantics.
func NormalizeSlashes(line string) string {
	return strings.ReplaceAll(line, `\`, "/")
}

// QuoteParams transforms a non-macro builtin line so its handler receives
// at most one argument: all parameter tokens are joined with single spaces
// and wrapped in one string literal. Slash normalization applies to the
// whole line first; a line with no parameters gets only that.
func QuoteParams(line string) string {
	parts := Tokenize(NormalizeSlashes(line))
	if len(parts.Params) == 0 {
		return parts.Command
	}
	return parts.Command + " " + QuoteLiteral(strings.Join(parts.Params, " "))
}

// Canonicalize wraps transformed text into a single evaluable expression.
// Text that already is an expression passes through; find results are
// wrapped in show so listings pretty-print.
func Canonicalize(text string) string {
	switch {
	case text == "":
		return ""
	case strings.HasPrefix(text, "("):
		return text
	}

	if Tokenize(text).Command == "find" {
		return "(show (" + text + "))"
	}
	return "(" + text + ")"
}
