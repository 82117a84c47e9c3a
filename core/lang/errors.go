package lang

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the recoverable failure classes. Anything that
// isn't one of these kinds terminates the process.
type ErrorKind int

const (
	// ParseError marks a failure turning canonical text into an expression.
	ParseError ErrorKind = iota
	// EvalError marks a failure evaluating a well-formed expression.
	EvalError
	// IOError marks a failure touching the filesystem or other I/O.
	IOError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case EvalError:
		return "eval error"
	case IOError:
		return "io error"
	default:
		return "error"
	}
}

// Error is a recoverable shell error. Its Error() string carries the kind
// as an internal classification prefix; UserMessage strips it again before
// anything is shown to the user.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Errorf builds a recoverable error of the given kind.
func Errorf(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// Recoverable reports whether err may be shown to the user and the loop
// continued, rather than terminating the process.
func Recoverable(err error) bool {
	var le *Error
	return errors.As(err, &le)
}

// UserMessage renders err as the single line shown at the prompt, with the
// internal classification prefix stripped.
func UserMessage(err error) string {
	var le *Error
	if errors.As(err, &le) {
		return le.Message
	}
	return err.Error()
}
