package handlers

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestStartRecordingAndSave(t *testing.T) {
	f := newFixture()

	mustEval(t, f, "(start-recording)")
	assert.True(t, f.Session.RecordingActive())

	f.Session.RecordLine("pwd")
	f.Session.RecordLine("ls")
	f.Session.RecordLine("save-script out.txt")

	value := mustEval(t, f, `(save-script "out.txt")`)
	assert.Equal(t, "Wrote out.txt", value.Display())
	assert.False(t, f.Session.RecordingActive())

	data, err := afero.ReadFile(f.Fs, "/out.txt")
	assert.Nil(t, err)
	assert.Equal(t, "pwd\rls", string(data))
}

func TestSaveScript_defaultName(t *testing.T) {
	f := newFixture()

	mustEval(t, f, "(start-recording)")
	f.Session.RecordLine("pwd")
	f.Session.RecordLine("save-script")

	value := mustEval(t, f, "(save-script)")
	assert.Equal(t, "Wrote script.txt", value.Display())

	ok, _ := afero.Exists(f.Fs, "/script.txt")
	assert.True(t, ok)
}

func TestSaveScript_declinedOverwrite(t *testing.T) {
	f := newFixture()
	f.WriteFile(t, "/out.txt", "precious")

	mustEval(t, f, "(start-recording)")
	f.Session.RecordLine("pwd")
	f.Session.RecordLine("save-script out.txt")

	f.Stdin.WriteString("no\n")
	value := mustEval(t, f, `(save-script "out.txt")`)
	assert.Equal(t, "out.txt left untouched", value.Display())

	data, _ := afero.ReadFile(f.Fs, "/out.txt")
	assert.Equal(t, "precious", string(data))
}
