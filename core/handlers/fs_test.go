package handlers

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/loom-sh/loom/core/lang"
)

func TestPwd(t *testing.T) {
	f := newFixture()
	f.Mkdir(t, "/work")
	assert.Nil(t, f.Session.Chdir("/work"))

	assert.Equal(t, "/work", mustEval(t, f, "(pwd)").Display())
}

func TestCd(t *testing.T) {
	f := newFixture()
	f.Mkdir(t, "/a/b")

	mustEval(t, f, `(cd "a/b")`)
	assert.Equal(t, "/a/b", f.Session.WorkingDir())

	mustEval(t, f, "(cd..)")
	assert.Equal(t, "/a", f.Session.WorkingDir())

	mustEval(t, f, "(cd/)")
	assert.Equal(t, "/", f.Session.WorkingDir())

	_, err := eval(t, f, `(cd "missing")`)
	assert.Equal(t, "missing: no such directory", lang.UserMessage(err))
}

func TestCat(t *testing.T) {
	f := newFixture()
	f.WriteFile(t, "/notes.txt", "hello\nworld\n")

	assert.Equal(t, "hello\nworld", mustEval(t, f, `(cat "notes.txt")`).Display())

	_, err := eval(t, f, `(cat "missing.txt")`)
	assert.True(t, lang.Recoverable(err))
}

func TestCp(t *testing.T) {
	f := newFixture()
	f.WriteFile(t, "/src.txt", "payload")

	mustEval(t, f, `(cp "src.txt dst.txt")`)

	data, err := afero.ReadFile(f.Fs, "/dst.txt")
	assert.Nil(t, err)
	assert.Equal(t, "payload", string(data))

	_, err = eval(t, f, `(cp "only-one")`)
	assert.Contains(t, lang.UserMessage(err), "cp expects SRC and DST")
}

func TestRm(t *testing.T) {
	f := newFixture()
	f.WriteFile(t, "/junk.txt", "x")
	f.Mkdir(t, "/dir")

	mustEval(t, f, `(rm "junk.txt")`)
	exists, _ := afero.Exists(f.Fs, "/junk.txt")
	assert.False(t, exists)

	_, err := eval(t, f, `(rm "dir")`)
	assert.Equal(t, "rm: dir is a directory", lang.UserMessage(err))
}

func TestRmdir(t *testing.T) {
	f := newFixture()
	f.Mkdir(t, "/empty")
	f.WriteFile(t, "/file.txt", "x")

	mustEval(t, f, `(rmdir "empty")`)
	exists, _ := afero.DirExists(f.Fs, "/empty")
	assert.False(t, exists)

	_, err := eval(t, f, `(rmdir "file.txt")`)
	assert.Equal(t, "rmdir: file.txt is not a directory", lang.UserMessage(err))
}

func TestMkdirTouch(t *testing.T) {
	f := newFixture()

	mustEval(t, f, `(mkdir "fresh")`)
	ok, _ := afero.DirExists(f.Fs, "/fresh")
	assert.True(t, ok)

	mustEval(t, f, `(touch "fresh/file.txt")`)
	ok, _ = afero.Exists(f.Fs, "/fresh/file.txt")
	assert.True(t, ok)

	// Touching an existing file is fine too.
	mustEval(t, f, `(touch "fresh/file.txt")`)
}

func TestLs(t *testing.T) {
	f := newFixture()
	f.WriteFile(t, "/b.txt", "x")
	f.WriteFile(t, "/a.txt", "x")
	f.WriteFile(t, "/.hidden", "x")

	assert.Equal(t, "a.txt\nb.txt", mustEval(t, f, "(ls)").Display())
	assert.Equal(t, ".hidden\na.txt\nb.txt", mustEval(t, f, `(ls "-a")`).Display())

	long := mustEval(t, f, "(ll)").Display()
	assert.Contains(t, long, "a.txt")
	assert.Contains(t, long, "b.txt")

	assert.Equal(t, "a.txt\nb.txt", mustEval(t, f, "(dir)").Display())
}
