package handlers

import (
	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Rm removes a file.
func Rm(s *session.Session, args []lang.Value) (lang.Value, error) {
	name, err := oneString("rm", args)
	if err != nil {
		return lang.Value{}, err
	}

	target := s.ResolvePath(name)
	stat, err := s.Fs().Stat(target)
	if err != nil {
		return lang.Value{}, lang.Errorf(lang.EvalError, "rm: %v", err)
	}
	if stat.IsDir() {
		return lang.Value{}, lang.Errorf(lang.EvalError, "rm: %s is a directory", name)
	}
	if err := s.Fs().Remove(target); err != nil {
		return lang.Value{}, lang.Errorf(lang.IOError, "rm: %v", err)
	}
	return lang.VoidValue(), nil
}

// Rmdir removes a directory.
func Rmdir(s *session.Session, args []lang.Value) (lang.Value, error) {
	name, err := oneString("rmdir", args)
	if err != nil {
		return lang.Value{}, err
	}

	target := s.ResolvePath(name)
	stat, err := s.Fs().Stat(target)
	if err != nil {
		return lang.Value{}, lang.Errorf(lang.EvalError, "rmdir: %v", err)
	}
	if !stat.IsDir() {
		return lang.Value{}, lang.Errorf(lang.EvalError, "rmdir: %s is not a directory", name)
	}
	if err := s.Fs().Remove(target); err != nil {
		return lang.Value{}, lang.Errorf(lang.IOError, "rmdir: %v", err)
	}
	return lang.VoidValue(), nil
}

func init() {
	register("rm", Rm)
	register("rmdir", Rmdir)
}
