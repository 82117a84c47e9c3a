package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-sh/loom/core"
)

func TestParseScript(t *testing.T) {
	cases := []struct {
		name string
		data string
		want []string
	}{
		{"empty", "", nil},
		{"single", "pwd", []string{"pwd"}},
		{"rows", "pwd\rmkdir work\rcd work", []string{"pwd", "mkdir work", "cd work"}},
		{"editor added newlines", "pwd\n\rls\n", []string{"pwd", "ls"}},
		{"blank rows skipped", "pwd\r\rls", []string{"pwd", "ls"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.ParseScript([]byte(tc.data)))
		})
	}
}

func TestReplay(t *testing.T) {
	sh, f := newShell(t)

	err := sh.Replay(core.ParseScript([]byte("mkdir work\rcd work\rpwd")))
	require.NoError(t, err)
	assert.Equal(t, "/> mkdir work\n/> cd work\n/work> pwd\n/work\n", f.Output())
}

func TestReplay_stopsAtExit(t *testing.T) {
	sh, f := newShell(t)

	err := sh.Replay([]string{"exit", "pwd"})
	require.NoError(t, err)
	assert.Equal(t, "/> exit\n"+f.Session.Config().Farewell+"\n", f.Output())
}
