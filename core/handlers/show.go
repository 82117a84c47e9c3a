package handlers

import (
	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Show pretty-prints a value: lists display one element per line, anything
// else displays as itself.
func Show(s *session.Session, args []lang.Value) (lang.Value, error) {
	if len(args) != 1 {
		return lang.Value{}, lang.Errorf(lang.EvalError, "show expects one argument")
	}
	return args[0], nil
}

func init() {
	register("show", Show)
}
