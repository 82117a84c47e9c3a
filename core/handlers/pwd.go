package handlers

import (
	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Pwd prints the session's working directory.
func Pwd(s *session.Session, args []lang.Value) (lang.Value, error) {
	if err := noArgs("pwd", args); err != nil {
		return lang.Value{}, err
	}
	return lang.StrValue(s.WorkingDir()), nil
}

func init() {
	register("pwd", Pwd)
}
