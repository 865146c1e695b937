package dag

import (
	"strings"

	"github.com/vk/drover/internal/registry"
)

// Plan is the linear order of targets to run for a single request. Every
// name appears exactly once, and every prerequisite of a plan entry appears
// strictly earlier in the same plan.
type Plan struct {
	Targets []string
}

// String renders the plan as an arrow-separated chain for diagnostics.
func (p *Plan) String() string {
	return strings.Join(p.Targets, " -> ")
}

// mark is the traversal state of a single target during resolution.
type mark int

const (
	unvisited mark = iota
	inProgress
	done
)

// Resolve computes the execution plan for the named target.
//
// The traversal is a depth-first search over prerequisite edges with three
// marks per node. Revisiting an in-progress node means the prerequisite graph
// has a cycle and resolution fails with a *CyclicDependencyError carrying the
// cycle's names in discovery order. A name with no registration — requested
// or declared as a prerequisite — fails with a *registry.UnknownTargetError.
// A node already marked done is skipped, so a prerequisite shared by several
// dependents is planned exactly once, at the position of its first
// completion.
func Resolve(reg *registry.Registry, name string) (*Plan, error) {
	marks := make(map[string]mark, reg.Len())
	order := make([]string, 0, reg.Len())
	var path []string

	var visit func(string) error
	visit = func(n string) error {
		switch marks[n] {
		case done:
			// First completion wins; never re-run a planned target.
			return nil
		case inProgress:
			return &CyclicDependencyError{Cycle: cycleFrom(path, n)}
		}

		target, err := reg.Lookup(n)
		if err != nil {
			return err
		}

		marks[n] = inProgress
		path = append(path, n)
		for _, prereq := range target.Prereqs {
			if err := visit(prereq); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		marks[n] = done
		order = append(order, n)
		return nil
	}

	if err := visit(name); err != nil {
		return nil, err
	}
	return &Plan{Targets: order}, nil
}

// cycleFrom slices the traversal path from the first occurrence of name and
// closes the loop back onto it, e.g. [a b c a] for a -> b -> c -> a.
func cycleFrom(path []string, name string) []string {
	for i, n := range path {
		if n == name {
			cycle := append([]string{}, path[i:]...)
			return append(cycle, name)
		}
	}
	return []string{name, name}
}
