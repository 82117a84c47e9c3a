package lang

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_prefixes(t *testing.T) {
	cases := []struct {
		kind     ErrorKind
		expected string
	}{
		{ParseError, "parse error: boom"},
		{EvalError, "eval error: boom"},
		{IOError, "io error: boom"},
	}

	for _, tc := range cases {
		t.Run(tc.expected, func(t *testing.T) {
			err := Errorf(tc.kind, "boom")
			assert.Equal(t, tc.expected, err.Error())
			// The user never sees the classification prefix.
			assert.Equal(t, "boom", UserMessage(err))
		})
	}
}

func TestRecoverable(t *testing.T) {
	assert.True(t, Recoverable(Errorf(EvalError, "x")))
	assert.True(t, Recoverable(fmt.Errorf("wrapped: %w", Errorf(ParseError, "x"))))
	assert.False(t, Recoverable(errors.New("plain")))
}
