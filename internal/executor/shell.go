package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Shell runs command lines through the system shell, one subprocess per
// command, in the current working directory with the inherited process
// environment. Stdout and stderr pass through untouched; the engine never
// parses command output.
type Shell struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShell returns a Shell wired to the process's own standard streams.
func NewShell() *Shell {
	return &Shell{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run invokes `sh -c command` and waits for it to exit. The subprocess is
// deliberately not bound to ctx: on interrupt the executor stops scheduling,
// while signal delivery to the running child is the terminal's business.
func (s *Shell) Run(_ context.Context, command string) (int, error) {
	cmd := exec.Command(shellPath(), "-c", command)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	// The shell itself could not be started.
	return -1, err
}

// shellPath prefers the operator's shell and falls back to /bin/sh.
func shellPath() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}
