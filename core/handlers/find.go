package handlers

import (
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Find lists names in the working directory matching a glob. A bare find
// lists everything. The result is a list the canonicalizer auto-wraps in
// show.
func Find(s *session.Session, args []lang.Value) (lang.Value, error) {
	glob, hasGlob, err := optionalString("find", args)
	if err != nil {
		return lang.Value{}, err
	}
	if hasGlob {
		if _, err := path.Match(glob, ""); err != nil {
			return lang.Value{}, lang.Errorf(lang.EvalError, "find: bad pattern %q", glob)
		}
	}

	infos, err := afero.ReadDir(s.Fs(), s.WorkingDir())
	if err != nil {
		return lang.Value{}, lang.Errorf(lang.EvalError, "find: %v", err)
	}

	var names []string
	for _, info := range infos {
		if hasGlob {
			if ok, _ := path.Match(glob, info.Name()); !ok {
				continue
			}
		}
		names = append(names, info.Name())
	}
	return lang.ListValue(names), nil
}

// Search is find's recursive cousin: it matches file names against the glob
// anywhere below the working directory and reports relative paths.
func Search(s *session.Session, args []lang.Value) (lang.Value, error) {
	glob, err := oneString("search", args)
	if err != nil {
		return lang.Value{}, err
	}
	if _, err := path.Match(glob, ""); err != nil {
		return lang.Value{}, lang.Errorf(lang.EvalError, "search: bad pattern %q", glob)
	}

	root := s.WorkingDir()
	var found []string
	walkErr := afero.Walk(s.Fs(), root, func(p string, info os.FileInfo, err error) error {
		if err != nil || p == root {
			return nil // skip unreadable entries
		}
		if ok, _ := path.Match(glob, info.Name()); ok {
			rel := strings.TrimPrefix(p, strings.TrimSuffix(root, "/")+"/")
			found = append(found, rel)
		}
		return nil
	})
	if walkErr != nil {
		return lang.Value{}, lang.Errorf(lang.IOError, "search: %v", walkErr)
	}
	return lang.ListValue(found), nil
}

func init() {
	register("find", Find)
	register("search", Search)
}
