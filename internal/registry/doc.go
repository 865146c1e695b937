// Package registry holds the declared target set for a single application
// instance.
//
// A Registry maps target names to their declarations: the ordered
// prerequisites that must complete first, the ordered shell commands the
// target runs, and a phony flag. It is built once at startup — either
// directly through Register or fluently through a Builder — and is read-only
// for the rest of the process lifetime. The resolver and the executor receive
// it by reference; nothing mutates it after construction.
package registry
