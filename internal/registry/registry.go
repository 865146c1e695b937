package registry

// Target is a single named task: the commands it runs, the targets that must
// complete before it, and a one-line description for listings.
type Target struct {
	Name        string
	Prereqs     []string
	Commands    []string
	Phony       bool
	Description string
}

// Registry holds the immutable set of declared targets, plus the name of the
// target selected when the operator names none.
type Registry struct {
	targets     map[string]Target
	order       []string
	defaultName string
}

// New creates and initializes a new, empty Registry instance.
func New() *Registry {
	return &Registry{
		targets: make(map[string]Target),
	}
}

// Register adds a target declaration. Registering a name twice fails with a
// *DuplicateTargetError.
func (r *Registry) Register(t Target) error {
	if _, ok := r.targets[t.Name]; ok {
		return &DuplicateTargetError{Name: t.Name}
	}
	r.targets[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// SetDefault marks the target run when no target name is requested. The
// target must already be registered.
func (r *Registry) SetDefault(name string) error {
	if _, ok := r.targets[name]; !ok {
		return &UnknownTargetError{Name: name}
	}
	r.defaultName = name
	return nil
}

// Lookup returns the target registered under name, or a *UnknownTargetError
// when no such target exists.
func (r *Registry) Lookup(name string) (Target, error) {
	t, ok := r.targets[name]
	if !ok {
		return Target{}, &UnknownTargetError{Name: name}
	}
	return t, nil
}

// Names returns the registered target names in declaration order, so
// listings stay stable across runs.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Default returns the name of the default target, or "" when none was set.
func (r *Registry) Default() string {
	return r.defaultName
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.targets)
}
