package handlers

import (
	shlex "github.com/anmitsu/go-shlex"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Run launches an external program. The quoted parameter is split back into
// an argv with shell-style quoting.
func Run(s *session.Session, args []lang.Value) (lang.Value, error) {
	param, err := oneString("run", args)
	if err != nil {
		return lang.Value{}, err
	}

	argv, err := shlex.Split(param, true)
	if err != nil || len(argv) == 0 {
		return lang.Value{}, lang.Errorf(lang.EvalError, "run: nothing to run in %q", param)
	}
	if err := s.Launcher().Start(argv); err != nil {
		return lang.Value{}, err
	}
	return lang.VoidValue(), nil
}

// Racket forwards a file to the configured Racket binary.
func Racket(s *session.Session, args []lang.Value) (lang.Value, error) {
	name, err := oneString("racket", args)
	if err != nil {
		return lang.Value{}, err
	}
	if err := s.Launcher().Start([]string{s.Config().Racket, s.ResolvePath(name)}); err != nil {
		return lang.Value{}, err
	}
	return lang.VoidValue(), nil
}

func init() {
	register("run", Run)
	register("racket", Racket)
}
