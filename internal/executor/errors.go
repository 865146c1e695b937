package executor

import "fmt"

// CommandError identifies the failing command of a run: the target it
// belongs to, the command's position within that target's declared list, and
// the subprocess exit status. It is produced only on failure; prior
// successful commands keep their effects, and nothing runs afterwards.
type CommandError struct {
	Target       string
	CommandIndex int
	Command      string
	ExitCode     int
}

// Error implements the error interface for CommandError.
func (e *CommandError) Error() string {
	return fmt.Sprintf("target %q: command %d (%s) exited with status %d",
		e.Target, e.CommandIndex, e.Command, e.ExitCode)
}
