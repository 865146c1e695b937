// Package dag resolves the execution order of targets. Given a requested
// target name and a registry, Resolve walks the prerequisite edges
// depth-first and produces a Plan: a deduplicated linear order in which every
// prerequisite appears strictly before its dependents. Resolution is pure —
// no I/O, no side effects — so it is safe to call repeatedly and concurrently
// for diagnostics such as a dry-run plan display.
package dag
