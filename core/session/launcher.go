package session

import (
	"os/exec"
	"runtime"

	"github.com/loom-sh/loom/core/lang"
)

// Launcher starts external programs and opens URLs. Launches are
// fire-and-forget: the loop never waits on the spawned process.
type Launcher interface {
	Start(argv []string) error
	OpenURL(address string) error
}

// ExecLauncher launches real processes on the host.
type ExecLauncher struct{}

var _ Launcher = (*ExecLauncher)(nil)

func (*ExecLauncher) Start(argv []string) error {
	if len(argv) == 0 {
		return lang.Errorf(lang.EvalError, "nothing to run")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return lang.Errorf(lang.EvalError, "could not start %s: %v", argv[0], err)
	}
	// Reap the child in the background so it doesn't linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (*ExecLauncher) OpenURL(address string) error {
	var argv []string
	switch runtime.GOOS {
	case "darwin":
		argv = []string{"open", address}
	case "windows":
		argv = []string{"rundll32", "url.dll,FileProtocolHandler", address}
	default:
		argv = []string{"xdg-open", address}
	}
	return (&ExecLauncher{}).Start(argv)
}

// DisabledLauncher refuses every launch. Served SSH sessions use it so
// remote users can't start processes on the host.
type DisabledLauncher struct{}

var _ Launcher = (*DisabledLauncher)(nil)

func (*DisabledLauncher) Start(argv []string) error {
	return lang.Errorf(lang.EvalError, "external programs are disabled in this session")
}

func (*DisabledLauncher) OpenURL(address string) error {
	return lang.Errorf(lang.EvalError, "opening URLs is disabled in this session")
}
