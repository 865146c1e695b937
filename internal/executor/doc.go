// Package executor runs a resolved execution plan. All side effects of the
// engine live here: every command line becomes one subprocess, run strictly
// in sequence, and the only signal consumed back from a command is its exit
// status. The first non-zero status aborts the whole run.
package executor
