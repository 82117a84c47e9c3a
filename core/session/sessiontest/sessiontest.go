// Package sessiontest builds deterministic sessions for tests: an
// in-memory filesystem, buffered I/O and a recording fake launcher.
package sessiontest

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"

	"github.com/loom-sh/loom/core/config"
	"github.com/loom-sh/loom/core/session"
)

// FakeLauncher records launches instead of performing them.
type FakeLauncher struct {
	Started [][]string
	URLs    []string
	// Err, when set, is returned from every call.
	Err error
}

var _ session.Launcher = (*FakeLauncher)(nil)

func (f *FakeLauncher) Start(argv []string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Started = append(f.Started, argv)
	return nil
}

func (f *FakeLauncher) OpenURL(address string) error {
	if f.Err != nil {
		return f.Err
	}
	f.URLs = append(f.URLs, address)
	return nil
}

// Fixture bundles a test session with its observable surroundings.
type Fixture struct {
	Session  *session.Session
	Fs       afero.Fs
	Stdin    *bytes.Buffer
	Stdout   *bytes.Buffer
	Launcher *FakeLauncher
}

// New creates a session rooted at "/" on a MemMapFs.
func New(resolver session.HandlerResolver) *Fixture {
	f := &Fixture{
		Fs:       afero.NewMemMapFs(),
		Stdin:    &bytes.Buffer{},
		Stdout:   &bytes.Buffer{},
		Launcher: &FakeLauncher{},
	}

	sess := session.New(f.Fs, resolver, config.Default())
	sess.SetIO(f.Stdin, f.Stdout, f.Stdout)
	sess.SetLauncher(f.Launcher)
	f.Session = sess
	return f
}

// WriteFile puts content on the test filesystem, failing the test on error.
func (f *Fixture) WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := afero.WriteFile(f.Fs, path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// Mkdir creates a directory on the test filesystem.
func (f *Fixture) Mkdir(t *testing.T, path string) {
	t.Helper()
	if err := f.Fs.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}
}

// Output returns everything written to the session's stdout so far.
func (f *Fixture) Output() string {
	return f.Stdout.String()
}
