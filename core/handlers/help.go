package handlers

import (
	"fmt"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Help shows the builtin command table, or one command's usage.
func Help(s *session.Session, args []lang.Value) (lang.Value, error) {
	name, hasName, err := optionalString("help", args)
	if err != nil {
		return lang.Value{}, err
	}

	if hasName {
		p, ok := lang.LookupPattern(name)
		if !ok {
			return lang.Value{}, lang.Errorf(lang.EvalError, "help: no builtin named %q", name)
		}
		return lang.ListValue([]string{"usage: " + p.Use, p.Short}), nil
	}

	var lines []string
	for _, p := range lang.Patterns {
		lines = append(lines, fmt.Sprintf("%-24s %s", p.Use, p.Short))
	}
	return lang.ListValue(lines), nil
}

func init() {
	register("help", Help)
}
