package handlers

import (
	"os"
	"time"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Touch creates a file or updates its access and modification times.
func Touch(s *session.Session, args []lang.Value) (lang.Value, error) {
	name, err := oneString("touch", args)
	if err != nil {
		return lang.Value{}, err
	}

	target := s.ResolvePath(name)
	now := time.Now()
	switch err := s.Fs().Chtimes(target, now, now); {
	case os.IsNotExist(err):
		fd, err := s.Fs().Create(target)
		if err != nil {
			return lang.Value{}, lang.Errorf(lang.EvalError, "touch: cannot touch %q: %v", name, err)
		}
		fd.Close()
	case err != nil:
		return lang.Value{}, lang.Errorf(lang.EvalError, "touch: setting times of %q: %v", name, err)
	}
	return lang.VoidValue(), nil
}

func init() {
	register("touch", Touch)
}
