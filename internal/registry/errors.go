package registry

import "fmt"

// DuplicateTargetError reports a second registration under an already
// registered name.
type DuplicateTargetError struct {
	Name string
}

// Error implements the error interface for DuplicateTargetError.
func (e *DuplicateTargetError) Error() string {
	return fmt.Sprintf("target %q is already registered", e.Name)
}

// UnknownTargetError reports a reference to a name with no registration,
// either requested directly or named as a prerequisite.
type UnknownTargetError struct {
	Name string
}

// Error implements the error interface for UnknownTargetError.
func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target %q", e.Name)
}
