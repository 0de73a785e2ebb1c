package dispatch

import (
	"os/exec"
	"runtime"

	"fix-layout/pkg/core"
)

// Runner starts a command without waiting for it.
type Runner interface {
	Run(command string)
}

// ShellRunner runs commands through the platform shell. Spawn failures and
// exit statuses are only logged at debug level.
type ShellRunner struct {
	Log core.Logger
	// Shell and Flag override the interpreter, e.g. "bash" and "-c".
	Shell string
	Flag  string
}

// NewShellRunner returns a runner using sh -c, or cmd /C on Windows.
func NewShellRunner(log core.Logger) *ShellRunner {
	if runtime.GOOS == "windows" {
		return &ShellRunner{Log: log, Shell: "cmd", Flag: "/C"}
	}
	return &ShellRunner{Log: log, Shell: "sh", Flag: "-c"}
}

func (r *ShellRunner) Run(command string) {
	cmd := exec.Command(r.Shell, r.Flag, command)
	if err := cmd.Start(); err != nil {
		r.Log.Debug("Failed to start command", "command", command, "error", err.Error())
		return
	}
	r.Log.Debug("Started command", "command", command, "pid", cmd.Process.Pid)

	// Reap the child so it does not linger as a zombie.
	go func() {
		if err := cmd.Wait(); err != nil {
			r.Log.Debug("Command exited with error", "command", command, "error", err.Error())
		}
	}()
}
