// Package lifecycle declares the built-in development lifecycle targets:
// cleaning build output, packaging a distributable binary, formatting,
// linting, testing with optional coverage, watching for changes, and cutting
// a signed, pushed release. The declarations replace the Makefile-style
// automation they grew out of; the wrapped tools stay opaque subprocesses.
package lifecycle
