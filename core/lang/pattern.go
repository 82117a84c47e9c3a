package lang

import "strings"

// MatchKind describes how a builtin's name must appear in a line for the
// line to be routed to builtin handling.
type MatchKind int

const (
	// MatchExact matches only the bare name.
	MatchExact MatchKind = iota
	// MatchPrefixSpace matches the name followed by a space and more text.
	MatchPrefixSpace
	// MatchExactOrParam matches the bare name or the name followed by a
	// space and more text.
	MatchExactOrParam
	// MatchNoSpace matches a literal with no separating space, e.g. "cd..".
	MatchNoSpace
)

// Pattern is one row of the builtin classification table.
type Pattern struct {
	// Name is the command token the pattern matches.
	Name string
	// Kind is how the name must appear in the line.
	Kind MatchKind
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
}

// Patterns is the fixed builtin classification table. Matching is purely
// structural; the handlers behind the names live elsewhere.
var Patterns = []Pattern{
	{Name: "pwd", Kind: MatchExact, Use: "pwd", Short: "Print the working directory."},
	{Name: "edit-me", Kind: MatchExact, Use: "edit-me", Short: "Open the loom configuration in the editor."},
	{Name: "start-recording", Kind: MatchExact, Use: "start-recording", Short: "Begin recording typed lines into a script."},

	{Name: "cp", Kind: MatchPrefixSpace, Use: "cp SRC DST", Short: "Copy a file."},
	{Name: "rm", Kind: MatchPrefixSpace, Use: "rm FILE", Short: "Remove a file."},
	{Name: "cd", Kind: MatchPrefixSpace, Use: "cd DIR", Short: "Change the working directory."},
	{Name: "cat", Kind: MatchPrefixSpace, Use: "cat FILE", Short: "Print a text file."},
	{Name: "run", Kind: MatchPrefixSpace, Use: "run PROGRAM [ARG...]", Short: "Launch an external program."},
	{Name: "url", Kind: MatchPrefixSpace, Use: "url ADDRESS", Short: "Open an address in the browser."},
	{Name: "show", Kind: MatchPrefixSpace, Use: "show VALUE", Short: "Pretty-print a value."},
	{Name: "edit", Kind: MatchPrefixSpace, Use: "edit FILE", Short: "Open a file in the editor."},
	{Name: "rmdir", Kind: MatchPrefixSpace, Use: "rmdir DIR", Short: "Remove an empty directory."},
	{Name: "touch", Kind: MatchPrefixSpace, Use: "touch FILE", Short: "Create a file or update its times."},
	{Name: "mkdir", Kind: MatchPrefixSpace, Use: "mkdir DIR", Short: "Create a directory."},
	{Name: "search", Kind: MatchPrefixSpace, Use: "search GLOB", Short: "Find file names recursively."},
	{Name: "racket", Kind: MatchPrefixSpace, Use: "racket FILE", Short: "Run a file with the Racket binary."},

	{Name: "ls", Kind: MatchExactOrParam, Use: "ls [-la] [DIR]", Short: "List a directory."},
	{Name: "ll", Kind: MatchExactOrParam, Use: "ll [DIR]", Short: "List a directory in long format."},
	{Name: "dir", Kind: MatchExactOrParam, Use: "dir [DIR]", Short: "List a directory."},
	{Name: "set", Kind: MatchExactOrParam, Use: "set NAME = VALUE", Short: "Bind a variable; bare set lists bindings."},
	{Name: "get", Kind: MatchExactOrParam, Use: "get", Short: "List every variable with its current value."},
	{Name: "find", Kind: MatchExactOrParam, Use: "find [GLOB]", Short: "List working directory entries matching a glob."},
	{Name: "help", Kind: MatchExactOrParam, Use: "help [NAME]", Short: "Show builtin commands."},
	{Name: "google", Kind: MatchExactOrParam, Use: "google QUERY", Short: "Open a web search for the query."},
	{Name: "save-script", Kind: MatchExactOrParam, Use: "save-script [FILE]", Short: "Write the recorded script and stop recording."},

	{Name: "cd/", Kind: MatchNoSpace, Use: "cd/", Short: "Change to the root directory."},
	{Name: "cd..", Kind: MatchNoSpace, Use: "cd..", Short: "Change to the parent directory."},
	{Name: `cd\`, Kind: MatchNoSpace, Use: `cd\`, Short: "Change to the root directory."},
}

// Matches reports whether the line matches this pattern.
func (p Pattern) Matches(line string) bool {
	switch p.Kind {
	case MatchExact, MatchNoSpace:
		return line == p.Name
	case MatchPrefixSpace:
		return strings.HasPrefix(line, p.Name+" ")
	case MatchExactOrParam:
		return line == p.Name || strings.HasPrefix(line, p.Name+" ")
	default:
		return false
	}
}

// IsBuiltin reports whether the line matches any row of the pattern table.
func IsBuiltin(line string) bool {
	for _, p := range Patterns {
		if p.Matches(line) {
			return true
		}
	}
	return false
}

// LookupPattern finds the table row for a command name.
func LookupPattern(name string) (Pattern, bool) {
	for _, p := range Patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}
