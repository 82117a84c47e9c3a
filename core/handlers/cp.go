package handlers

import (
	"io"

	shlex "github.com/anmitsu/go-shlex"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Cp copies a file. The quoter delivers both paths as one string, so they
// are re-split here; quote paths that contain spaces.
func Cp(s *session.Session, args []lang.Value) (lang.Value, error) {
	param, err := oneString("cp", args)
	if err != nil {
		return lang.Value{}, err
	}

	paths, err := shlex.Split(param, true)
	if err != nil || len(paths) != 2 {
		return lang.Value{}, lang.Errorf(lang.EvalError, "cp expects SRC and DST, got %q", param)
	}

	src, err := s.Fs().Open(s.ResolvePath(paths[0]))
	if err != nil {
		return lang.Value{}, lang.Errorf(lang.EvalError, "cp: %v", err)
	}
	defer src.Close()

	dst, err := s.Fs().Create(s.ResolvePath(paths[1]))
	if err != nil {
		return lang.Value{}, lang.Errorf(lang.EvalError, "cp: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return lang.Value{}, lang.Errorf(lang.IOError, "cp: %v", err)
	}
	return lang.VoidValue(), nil
}

func init() {
	register("cp", Cp)
}
