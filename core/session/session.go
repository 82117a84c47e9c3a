package session

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/loom-sh/loom/core/config"
	"github.com/loom-sh/loom/core/lang"
)

// HandlerFunc is one target of the command dispatch table. Handlers receive
// the session and the already-evaluated call arguments.
type HandlerFunc func(s *Session, args []lang.Value) (lang.Value, error)

// HandlerResolver maps a command name to its handler.
type HandlerResolver func(name string) (HandlerFunc, bool)

// Session is the persistent evaluation context shared by every evaluation
// in one REPL run. It owns all mutable state: the variable store, the
// script recorder, the working directory and the I/O streams. There is
// exactly one logical thread of control, so no locking happens here.
type Session struct {
	fs       afero.Fs
	cfg      *config.Config
	resolver HandlerResolver

	cwd      string
	vars     varStore
	rec      scriptRecorder
	launcher Launcher

	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ lang.Env = (*Session)(nil)

// New creates a session rooted at "/" with discarded I/O and external
// launches disabled. Callers wire real streams and a launcher afterwards.
func New(fs afero.Fs, resolver HandlerResolver, cfg *config.Config) *Session {
	return &Session{
		fs:       fs,
		cfg:      cfg,
		resolver: resolver,
		cwd:      "/",
		launcher: &DisabledLauncher{},
		stdin:    bufio.NewReader(strings.NewReader("")),
		stdout:   ioutil.Discard,
		stderr:   ioutil.Discard,
	}
}

// SetIO wires the session's standard streams.
func (s *Session) SetIO(stdin io.Reader, stdout, stderr io.Writer) {
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	s.stdin = bufio.NewReader(stdin)
	if stdout != nil {
		s.stdout = stdout
	}
	if stderr != nil {
		s.stderr = stderr
	}
}

// SetLauncher wires how external programs and URLs are started.
func (s *Session) SetLauncher(l Launcher) {
	if l != nil {
		s.launcher = l
	}
}

// SetWorkingDir moves the session to dir without checking it exists; use
// Chdir for validated moves.
func (s *Session) SetWorkingDir(dir string) {
	s.cwd = path.Clean(lang.NormalizeSlashes(dir))
}

func (s *Session) Fs() afero.Fs           { return s.fs }
func (s *Session) Config() *config.Config { return s.cfg }
func (s *Session) Launcher() Launcher     { return s.launcher }
func (s *Session) Stdin() io.Reader       { return s.stdin }
func (s *Session) Stdout() io.Writer      { return s.stdout }
func (s *Session) Stderr() io.Writer      { return s.stderr }

// WorkingDir returns the current directory in absolute slash form.
func (s *Session) WorkingDir() string { return s.cwd }

// ResolvePath makes p absolute relative to the working directory.
func (s *Session) ResolvePath(p string) string {
	p = lang.NormalizeSlashes(p)
	if !strings.HasPrefix(p, "/") {
		p = path.Join(s.cwd, p)
	}
	return path.Clean(p)
}

// Chdir changes the working directory after checking the target exists.
func (s *Session) Chdir(dir string) error {
	target := s.ResolvePath(dir)
	ok, err := afero.DirExists(s.fs, target)
	if err != nil {
		return lang.Errorf(lang.IOError, "%s: %v", dir, err)
	}
	if !ok {
		return lang.Errorf(lang.EvalError, "%s: no such directory", dir)
	}
	s.cwd = target
	return nil
}

// ReadLine reads one line from session stdin, used for interactive
// confirmations.
func (s *Session) ReadLine() (string, error) {
	line, err := s.stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm prints a prompt and reports whether the answer starts with "y".
func (s *Session) Confirm(prompt string) bool {
	fmt.Fprint(s.stdout, prompt)
	answer, err := s.ReadLine()
	if err != nil {
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return strings.HasPrefix(answer, "y")
}

// Lookup implements lang.Env.
func (s *Session) Lookup(name string) (lang.Expr, bool) {
	return s.vars.lookup(name)
}

// Bind implements lang.Env.
func (s *Session) Bind(name string, rhs lang.Expr) {
	s.vars.bind(name, rhs)
}

// Names implements lang.Env.
func (s *Session) Names() []string {
	return s.vars.names()
}

// Invoke implements lang.Env by dispatching to the handler table.
func (s *Session) Invoke(name string, args []lang.Value) (lang.Value, error) {
	if s.resolver != nil {
		if handler, ok := s.resolver(name); ok {
			return handler(s, args)
		}
	}
	return lang.Value{}, lang.Errorf(lang.EvalError, "unknown command: %s", name)
}
