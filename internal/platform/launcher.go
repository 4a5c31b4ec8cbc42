// Package platform holds the OS-facing pieces: launching targets with
// the desktop's handler and resolving entry icons from theme
// directories. Everything above this package is platform-agnostic.
package platform

import (
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/google/shlex"
)

// LaunchError wraps a failure to open or execute a target. The target
// string is the formatted selection, after substitution.
type LaunchError struct {
	Target string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching %q: %v", e.Target, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Launcher opens files and URLs with the OS handler and runs commands
// detached from the current process. It implements launch.Launcher.
type Launcher struct {
	logger *slog.Logger
}

// NewLauncher returns a launcher. A nil logger falls back to
// slog.Default().
func NewLauncher(logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{logger: logger}
}

// OpenFile hands a path or URL to the OS handler (xdg-open and
// friends). The handler is started detached; its own exit status is
// not observed.
func (l *Launcher) OpenFile(target string) error {
	argv := openerArgs(target)
	l.logger.Debug("opening target", "target", target, "handler", argv[0])
	return l.startDetached(target, argv)
}

// RunCommand splits command shell-style and starts it detached. No
// shell is involved: quoting is honored, expansion is not.
func (l *Launcher) RunCommand(command string) error {
	argv, err := shlex.Split(command)
	if err != nil {
		return &LaunchError{Target: command, Err: err}
	}
	if len(argv) == 0 {
		return &LaunchError{Target: command, Err: fmt.Errorf("empty command")}
	}
	l.logger.Debug("running command", "argv0", argv[0], "args", len(argv)-1)
	return l.startDetached(command, argv)
}

func (l *Launcher) startDetached(target string, argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return &LaunchError{Target: target, Err: err}
	}
	// Detach: the launched program outlives this process, and we must
	// not leave a zombie behind while we are still running.
	if err := cmd.Process.Release(); err != nil {
		return &LaunchError{Target: target, Err: err}
	}
	return nil
}
