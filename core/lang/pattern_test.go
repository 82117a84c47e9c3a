package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBuiltin(t *testing.T) {
	cases := []struct {
		line     string
		expected bool
	}{
		// Exact-only names don't accept parameters.
		{"pwd", true},
		{"pwd extra", false},
		{"edit-me", true},
		{"start-recording", true},

		// Prefix names require a space and more text.
		{"cd /tmp", true},
		{"cd", false},
		{"cat notes.txt", true},
		{"cat", false},
		{"racket prog.rkt", true},

		// Exact-or-with-parameter accepts both shapes.
		{"ls", true},
		{"ls -l", true},
		{"set", true},
		{"set x = 5", true},
		{"find *.txt", true},
		{"save-script", true},
		{"save-script out.txt", true},

		// No-space variants are literal.
		{"cd/", true},
		{"cd..", true},
		{`cd\`, true},
		{"cd...", false},

		// Near-misses.
		{"pwdd", false},
		{"lsx", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsBuiltin(tc.line))
		})
	}
}

func TestLookupPattern(t *testing.T) {
	p, ok := LookupPattern("set")
	assert.True(t, ok)
	assert.Equal(t, MatchExactOrParam, p.Kind)

	_, ok = LookupPattern("bogus")
	assert.False(t, ok)
}
