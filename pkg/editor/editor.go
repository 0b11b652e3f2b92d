// Package editor opens a generated file in an external editor.
package editor

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rcops/mkmodule/pkg/logging"
)

// Launcher opens path with command and waits for it to exit
type Launcher interface {
	Launch(command, path string) error
}

// ExecLauncher runs the editor as a child process attached to the terminal
type ExecLauncher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecLauncher creates a launcher attached to the process's own streams
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Launch implements Launcher. The editor's exit status is not inspected;
// only a failure to start it is reported.
func (l *ExecLauncher) Launch(command, path string) error {
	if command == "" {
		return fmt.Errorf("no editor configured")
	}

	logger := logging.GetLogger("editor")
	logger.Debug().Str("editor", command).Str("path", path).Msg("launching editor")

	cmd := exec.Command(command, path)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			logger.Debug().Int("exit_code", exitErr.ExitCode()).Msg("editor exited")
			return nil
		}
		return fmt.Errorf("failed to launch editor %s: %w", command, err)
	}
	return nil
}
