package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/logger"
	"github.com/loom-sh/loom/core/session"
)

var promptColor = color.New(color.FgCyan, color.Bold)

// Terminal describes the terminal a shell runs on.
type Terminal struct {
	IsPTY bool
	Width func() int
}

// Shell is the dispatch loop: read a line, classify it, transform it into a
// canonical expression, evaluate it against the session, display the
// result, repeat.
type Shell struct {
	Session  *session.Session
	Readline *readline.Instance

	term   Terminal
	events *logger.Recorder
}

// NewShell wires a shell to the session's I/O streams.
func NewShell(sess *session.Session, term Terminal, events *logger.Recorder) (*Shell, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(io.NopCloser(sess.Stdin())),
		Stdout: sess.Stdout(),
		Stderr: sess.Stderr(),
		FuncIsTerminal: func() bool {
			return term.IsPTY
		},
	}
	if term.Width != nil {
		cfg.FuncGetWidth = term.Width
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	if events == nil {
		events = logger.Nop()
	}

	return &Shell{
		Session:  sess,
		Readline: rl,
		term:     term,
		events:   events,
	}, nil
}

// Prompt renders "<current-directory>> ".
func (s *Shell) Prompt() string {
	cwd := s.Session.WorkingDir()
	if s.term.IsPTY {
		cwd = promptColor.Sprint(cwd)
	}
	return cwd + "> "
}

// Run drives the loop until the user exits or input closes. Only the error
// classes classified as recoverable are swallowed; anything else is
// returned and terminates the process.
func (s *Shell) Run() error {
	defer s.Readline.Close()

	if greeting := s.Session.Config().Greeting; greeting != "" {
		fmt.Fprintln(s.Session.Stdout(), greeting)
	}
	s.events.Record(logger.KindSessionStart, "", "")

	for {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			s.events.Record(logger.KindSessionEnd, "", "eof")
			return nil
		case err == readline.ErrInterrupt:
			continue
		case err != nil:
			return err
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		quit, err := s.Execute(line)
		if err != nil {
			return err
		}
		if quit {
			s.events.Record(logger.KindSessionEnd, "", "exit")
			return nil
		}
	}
}

// Execute classifies and runs one non-empty line. It reports quit=true when
// the line begins the exit sequence. Recoverable evaluation failures are
// printed and swallowed; returned errors are fatal.
func (s *Shell) Execute(line string) (quit bool, err error) {
	sess := s.Session

	// Recording captures the raw line before any classification, so the
	// buffer also sees the exit and save-script lines.
	if sess.RecordingActive() {
		sess.RecordLine(line)
	}

	switch {
	case strings.HasPrefix(line, "exit"):
		fmt.Fprintln(sess.Stdout(), sess.Config().Farewell)
		return true, nil

	case lang.IsBuiltin(line):
		s.events.Record(logger.KindLine, line, "builtin")
		wasRecording := sess.RecordingActive()
		err := s.runBuiltin(line)
		if wasRecording && !sess.RecordingActive() {
			s.events.Record(logger.KindScriptSaved, line, "")
		}
		return false, err

	case s.isVariable(line):
		s.events.Record(logger.KindLine, line, "variable")
		return false, s.evalAndDisplay(line)

	case strings.HasPrefix(line, "("):
		s.events.Record(logger.KindLine, line, "expression")
		return false, s.evalAndDisplay(line)

	default:
		if path, ok := s.findProgram(line); ok {
			s.events.Record(logger.KindLine, line, "external")
			if err := sess.Launcher().Start([]string{path}); err != nil && lang.Recoverable(err) {
				fmt.Fprintln(sess.Stdout(), lang.UserMessage(err))
			}
			return false, nil
		}

		s.events.Record(logger.KindLine, line, "invalid")
		fmt.Fprintf(sess.Stdout(), "invalid command: %s\n", line)
		return false, nil
	}
}

// runBuiltin macro-expands or parameter-quotes the line, canonicalizes it
// and evaluates the result.
func (s *Shell) runBuiltin(line string) error {
	parts := lang.Tokenize(line)

	var text string
	if lang.IsMacro(parts.Command) {
		text = lang.ExpandMacro(parts)
	} else {
		text = lang.QuoteParams(line)
	}

	canonical := lang.Canonicalize(text)
	if canonical == "" {
		fmt.Fprintf(s.Session.Stdout(), "invalid command: %s\n", line)
		return nil
	}
	return s.evalAndDisplay(canonical)
}

// evalAndDisplay evaluates canonical text, printing either the displayable
// result or the single-line rendering of a recoverable failure.
func (s *Shell) evalAndDisplay(text string) error {
	value, err := lang.EvalText(text, s.Session)
	if err != nil {
		if !lang.Recoverable(err) {
			return err
		}
		s.events.Record(logger.KindError, text, err.Error())
		fmt.Fprintln(s.Session.Stdout(), lang.UserMessage(err))
		return nil
	}

	if out := value.Display(); out != "" {
		fmt.Fprintln(s.Session.Stdout(), out)
	}
	return nil
}

// isVariable reports whether the whole line names a bound variable.
func (s *Shell) isVariable(line string) bool {
	_, ok := s.Session.Lookup(line)
	return ok
}

// findProgram resolves the line as an external program: first as a path to
// an existing file, then with the DOS-era suffixes appended in order.
func (s *Shell) findProgram(line string) (string, bool) {
	candidate := s.Session.ResolvePath(line)
	if ok, err := afero.Exists(s.Session.Fs(), candidate); err == nil && ok {
		return candidate, true
	}

	for _, suffix := range []string{".exe", ".com", ".bat", ".sh"} {
		withSuffix := candidate + suffix
		if ok, err := afero.Exists(s.Session.Fs(), withSuffix); err == nil && ok {
			return withSuffix, true
		}
	}
	return "", false
}
