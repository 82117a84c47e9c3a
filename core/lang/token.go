package lang

import "strings"

// Parts is a command line split into its command and parameter tokens.
type Parts struct {
	Command string
	Params  []string
}

// Tokenize splits a line on single spaces into a command token and ordered
// parameter tokens. Runs of consecutive spaces collapse; empty tokens are
// never produced.
func Tokenize(line string) Parts {
	var tokens []string
	for _, tok := range strings.Split(line, " ") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	if len(tokens) == 0 {
		return Parts{}
	}
	parts := Parts{Command: tokens[0]}
	if len(tokens) > 1 {
		parts.Params = tokens[1:]
	}
	return parts
}

// Line reassembles the parts into a single-space separated line.
func (p Parts) Line() string {
	if len(p.Params) == 0 {
		return p.Command
	}
	return p.Command + " " + strings.Join(p.Params, " ")
}
