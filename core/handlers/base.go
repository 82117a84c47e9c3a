// Package handlers holds the action handlers behind the builtin pattern
// table. Each handler is registered into a dispatch table keyed by command
// name and receives the quoted parameter string produced by the parameter
// quoter.
package handlers

import (
	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// All holds every registered command handler.
var All = make(map[string]session.HandlerFunc)

// register adds a command to the dispatch table.
func register(name string, fn session.HandlerFunc) {
	All[name] = fn
}

// Resolver looks commands up in the dispatch table, for wiring into a
// session.
func Resolver(name string) (session.HandlerFunc, bool) {
	fn, ok := All[name]
	return fn, ok
}

// oneString unpacks the single quoted parameter of a command.
func oneString(name string, args []lang.Value) (string, error) {
	if len(args) != 1 || args[0].Kind != lang.Str {
		return "", lang.Errorf(lang.EvalError, "%s expects one argument", name)
	}
	return args[0].Text, nil
}

// optionalString unpacks the parameter of an exact-or-with-parameter
// command.
func optionalString(name string, args []lang.Value) (string, bool, error) {
	switch {
	case len(args) == 0:
		return "", false, nil
	case len(args) == 1 && args[0].Kind == lang.Str:
		return args[0].Text, true, nil
	default:
		return "", false, lang.Errorf(lang.EvalError, "%s expects at most one argument", name)
	}
}

// noArgs rejects any arguments.
func noArgs(name string, args []lang.Value) error {
	if len(args) != 0 {
		return lang.Errorf(lang.EvalError, "%s takes no arguments", name)
	}
	return nil
}
