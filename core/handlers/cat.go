package handlers

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Cat prints a text file.
func Cat(s *session.Session, args []lang.Value) (lang.Value, error) {
	name, err := oneString("cat", args)
	if err != nil {
		return lang.Value{}, err
	}

	data, err := afero.ReadFile(s.Fs(), s.ResolvePath(name))
	if err != nil {
		return lang.Value{}, lang.Errorf(lang.EvalError, "cat: %v", err)
	}
	return lang.StrValue(strings.TrimSuffix(string(data), "\n")), nil
}

func init() {
	register("cat", Cat)
}
