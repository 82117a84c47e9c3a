package handlers

import (
	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Edit opens a file in the configured editor, fire-and-forget.
func Edit(s *session.Session, args []lang.Value) (lang.Value, error) {
	name, err := oneString("edit", args)
	if err != nil {
		return lang.Value{}, err
	}
	if err := s.Launcher().Start([]string{s.Config().Editor, s.ResolvePath(name)}); err != nil {
		return lang.Value{}, err
	}
	return lang.VoidValue(), nil
}

// EditMe opens the loom configuration file in the editor.
func EditMe(s *session.Session, args []lang.Value) (lang.Value, error) {
	if err := noArgs("edit-me", args); err != nil {
		return lang.Value{}, err
	}
	if err := s.Launcher().Start([]string{s.Config().Editor, s.Config().Path()}); err != nil {
		return lang.Value{}, err
	}
	return lang.VoidValue(), nil
}

func init() {
	register("edit", Edit)
	register("edit-me", EditMe)
}
