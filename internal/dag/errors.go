package dag

import (
	"fmt"
	"strings"
)

// CyclicDependencyError reports a dependency cycle in the prerequisite
// graph, listing the target names in the order the traversal discovered
// them. The first and last entries are the same target.
type CyclicDependencyError struct {
	Cycle []string
}

// Error implements the error interface for CyclicDependencyError.
func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}
