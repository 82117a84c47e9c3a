package handlers

import (
	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Mkdir creates a directory.
func Mkdir(s *session.Session, args []lang.Value) (lang.Value, error) {
	name, err := oneString("mkdir", args)
	if err != nil {
		return lang.Value{}, err
	}

	if err := s.Fs().Mkdir(s.ResolvePath(name), 0755); err != nil {
		return lang.Value{}, lang.Errorf(lang.EvalError, "mkdir: cannot create directory %q: %v", name, err)
	}
	return lang.VoidValue(), nil
}

func init() {
	register("mkdir", Mkdir)
}
