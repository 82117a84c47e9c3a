package handlers

import (
	"path"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Cd changes the working directory.
func Cd(s *session.Session, args []lang.Value) (lang.Value, error) {
	dir, err := oneString("cd", args)
	if err != nil {
		return lang.Value{}, err
	}
	if err := s.Chdir(dir); err != nil {
		return lang.Value{}, err
	}
	return lang.VoidValue(), nil
}

// CdRoot handles the no-space "cd/" variant (and "cd\", which slash
// normalization folds into it).
func CdRoot(s *session.Session, args []lang.Value) (lang.Value, error) {
	if err := noArgs("cd/", args); err != nil {
		return lang.Value{}, err
	}
	return lang.VoidValue(), s.Chdir("/")
}

// CdUp handles the no-space "cd.." variant.
func CdUp(s *session.Session, args []lang.Value) (lang.Value, error) {
	if err := noArgs("cd..", args); err != nil {
		return lang.Value{}, err
	}
	return lang.VoidValue(), s.Chdir(path.Dir(s.WorkingDir()))
}

func init() {
	register("cd", Cd)
	register("cd/", CdRoot)
	register("cd..", CdUp)
}
