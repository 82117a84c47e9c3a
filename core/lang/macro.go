package lang

import "strings"

// Internal operation names emitted by the macro expander. They aren't part
// of the builtin pattern table and can only be reached through expansion or
// an explicit parenthesized expression.
const (
	OpBind     = "bind"
	OpVars     = "vars"
	OpMismatch = "set-mismatch"
)

// IsMacro reports whether the command token is handled by the macro
// expander rather than the parameter quoter.
func IsMacro(command string) bool {
	return command == "set" || command == "get"
}

// ExpandMacro rewrites a set/get line into canonical expression text. It
// always returns a string; shapes that match no macro rule expand to a
// diagnostic expression that explains the mismatch when evaluated.
func ExpandMacro(parts Parts) string {
	switch {
	case parts.Command == "get" && len(parts.Params) == 0:
		return "(" + OpVars + ")"

	case parts.Command == "set" && len(parts.Params) == 0:
		return "(" + OpVars + ")"

	case parts.Command == "set" && len(parts.Params) == 3 &&
		parts.Params[1] == "=" && parts.Params[0] != "" && parts.Params[2] != "":
		return "(" + OpBind + " " + parts.Params[0] + " " + parts.Params[2] + ")"

	default:
		return expandMismatch(parts)
	}
}

// expandMismatch builds a diagnostic call carrying the command, the first
// four parameter slots and whatever remained beyond them.
func expandMismatch(parts Parts) string {
	slots := make([]string, 4)
	copy(slots, parts.Params)

	var rest string
	if len(parts.Params) > 4 {
		rest = strings.Join(parts.Params[4:], " ")
	}

	args := []string{QuoteLiteral(parts.Command)}
	for _, s := range slots {
		args = append(args, QuoteLiteral(s))
	}
	args = append(args, QuoteLiteral(rest))

	return "(" + OpMismatch + " " + strings.Join(args, " ") + ")"
}

// FormatMismatch renders the diagnostic printed when a set/get line fits no
// macro rule. The arguments mirror expandMismatch's output.
func FormatMismatch(command string, slots [4]string, rest string) string {
	var b strings.Builder
	b.WriteString("unrecognized " + command + " form: params [")
	for i, s := range slots {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(QuoteLiteral(s))
	}
	b.WriteString("]")
	if rest != "" {
		b.WriteString(" rest " + QuoteLiteral(rest))
	}
	b.WriteString(`; expected "set NAME = VALUE" or bare "set"/"get"`)
	return b.String()
}
