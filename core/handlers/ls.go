package handlers

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// Ls lists a directory. Flags ride inside the quoted parameter string, so
// "ls -l tmp" arrives as the single argument "-l tmp" and is re-split here.
func Ls(s *session.Session, args []lang.Value) (lang.Value, error) {
	param, _, err := optionalString("ls", args)
	if err != nil {
		return lang.Value{}, err
	}
	return listing(s, "ls", param, false)
}

// Ll is ls in long format.
func Ll(s *session.Session, args []lang.Value) (lang.Value, error) {
	param, _, err := optionalString("ll", args)
	if err != nil {
		return lang.Value{}, err
	}
	return listing(s, "ll", param, true)
}

// Dir is the DOS-flavored alias for ls.
func Dir(s *session.Session, args []lang.Value) (lang.Value, error) {
	param, _, err := optionalString("dir", args)
	if err != nil {
		return lang.Value{}, err
	}
	return listing(s, "dir", param, false)
}

func listing(s *session.Session, name, param string, forceLong bool) (lang.Value, error) {
	opts := getopt.New()
	listAll := opts.Bool('a', "don't ignore entries starting with .")
	longListing := opts.Bool('l', "use a long listing format")

	argv := append([]string{name}, lang.Tokenize(name+" "+param).Params...)
	if err := opts.Getopt(argv, nil); err != nil {
		return lang.Value{}, lang.Errorf(lang.EvalError, "%s: %v", name, err)
	}

	dir := s.WorkingDir()
	if rest := opts.Args(); len(rest) > 0 {
		dir = s.ResolvePath(strings.Join(rest, " "))
	}

	infos, err := afero.ReadDir(s.Fs(), dir)
	if err != nil {
		return lang.Value{}, lang.Errorf(lang.EvalError, "%s: %v", name, err)
	}

	var kept []string
	long := forceLong || *longListing
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 1, ' ', 0)
	for _, info := range infos {
		if !*listAll && strings.HasPrefix(info.Name(), ".") {
			continue
		}
		if long {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
				info.Mode().String(),
				info.Size(),
				modTime(info.ModTime()),
				info.Name())
		} else {
			kept = append(kept, info.Name())
		}
	}

	if !long {
		return lang.ListValue(kept), nil
	}
	tw.Flush()
	return lang.StrValue(strings.TrimSuffix(buf.String(), "\n")), nil
}

// modTime formats like ls: time within the current year, year otherwise.
func modTime(t time.Time) string {
	if t.Year() >= time.Now().Year() {
		return t.Format("Jan _2 15:04")
	}
	return t.Format("Jan _2 2006")
}

func init() {
	register("ls", Ls)
	register("ll", Ll)
	register("dir", Dir)
}
