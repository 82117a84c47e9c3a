package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteParams(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		expected string
	}{
		{"no params", "pwd", "pwd"},
		{"single param", "cat notes.txt", `cat "notes.txt"`},
		{"multi-token param", "edit my file.txt", `edit "my file.txt"`},
		{"dos path", `cd C:\temp\stuff`, `cd "C:/temp/stuff"`},
		{"no-space variant", `cd\`, "cd/"},
		{"irregular spacing", "edit  my   file.txt", `edit "my file.txt"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, QuoteParams(tc.line))
		})
	}
}

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected string
	}{
		{"empty", "", ""},
		{"already expression", `(cat "a.txt")`, `(cat "a.txt")`},
		{"plain call", `cat "a.txt"`, `(cat "a.txt")`},
		{"bare command", "pwd", "(pwd)"},
		{"find auto-shows", `find "*.txt"`, `(show (find "*.txt"))`},
		{"bare find auto-shows", "find", "(show (find))"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Canonicalize(tc.text))
		})
	}
}
