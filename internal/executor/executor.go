package executor

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/drover/internal/ctxlog"
	"github.com/vk/drover/internal/dag"
	"github.com/vk/drover/internal/registry"
)

// Runner executes a single opaque command line and reports its exit status.
// The error return is reserved for failures to start the process at all; a
// command that ran and exited non-zero is reported through the status, not
// the error.
type Runner interface {
	Run(ctx context.Context, command string) (exitCode int, err error)
}

// Executor runs an execution plan strictly sequentially: one command
// finishes before the next begins, and one target's commands all complete
// before the next target in the plan starts. Several lifecycle commands have
// order-sensitive, externally visible effects (deleting shared output,
// mutating version-control history, pushing to a remote), so there is
// deliberately no parallelism across independent subtrees.
type Executor struct {
	runner Runner
	outW   io.Writer
}

// New creates an Executor that runs commands through the given runner and
// echoes each command line to outW before running it.
func New(runner Runner, outW io.Writer) *Executor {
	return &Executor{
		runner: runner,
		outW:   outW,
	}
}

// Run executes every command of every target in plan order.
//
// Phony targets always run; no target is ever skipped for being up to date —
// the engine performs no filesystem-staleness checks. The first non-zero
// exit status aborts the run: no further commands of that target run, and no
// later target in the plan runs. The failure comes back as a *CommandError
// naming the target, the command index, and the subprocess exit code.
//
// Cancellation is observed between commands only. Once ctx is cancelled,
// nothing further is scheduled; the in-flight subprocess is never signalled
// by the executor and finishes on its own terms.
func (e *Executor) Run(ctx context.Context, plan *dag.Plan, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)

	for _, name := range plan.Targets {
		target, err := reg.Lookup(name)
		if err != nil {
			return err
		}

		logger.Info("▶️ Starting target.", "target", name, "commands", len(target.Commands))
		for i, command := range target.Commands {
			if err := ctx.Err(); err != nil {
				logger.Warn("Run interrupted; no further commands will be scheduled.", "target", name)
				return fmt.Errorf("run interrupted: %w", err)
			}

			// Echo the command line before running it, make style.
			fmt.Fprintln(e.outW, command)

			code, err := e.runner.Run(ctx, command)
			if err != nil {
				return fmt.Errorf("target %q: command %d (%s): %w", name, i, command, err)
			}
			if code != 0 {
				return &CommandError{
					Target:       name,
					CommandIndex: i,
					Command:      command,
					ExitCode:     code,
				}
			}
		}
		logger.Info("✅ Finished target.", "target", name)
	}
	return nil
}
