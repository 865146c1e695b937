// Package testutil provides shared fakes and helpers for tests.
package testutil

import (
	"context"
	"sync"
)

// RecorderRunner is an executor.Runner fake that records every command line
// it is asked to run and returns scripted exit codes instead of spawning
// subprocesses. The zero value succeeds every command.
type RecorderRunner struct {
	mu       sync.Mutex
	commands []string

	// ExitCodes maps a command line to its scripted exit status. Commands
	// not present succeed with status 0.
	ExitCodes map[string]int

	// Errs maps a command line to a spawn error, simulating a process that
	// could not be started at all.
	Errs map[string]error
}

// Run implements the executor's Runner contract.
func (r *RecorderRunner) Run(_ context.Context, command string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, command)
	if err := r.Errs[command]; err != nil {
		return -1, err
	}
	return r.ExitCodes[command], nil
}

// Commands returns the command lines run so far, in invocation order.
func (r *RecorderRunner) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.commands...)
}

// CallCount returns the total number of command invocations.
func (r *RecorderRunner) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}
