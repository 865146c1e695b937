package registry

import (
	"errors"
	"fmt"
)

// Builder accumulates target declarations fluently and assembles the
// Registry in one shot. The first declaration error wins: it is reported by
// Build, and every later call becomes a no-op. Targets declared through the
// builder are phony by default; File marks the current one as producing a
// real artifact.
type Builder struct {
	reg         *Registry
	pending     *Target
	defaultName string
	err         error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{reg: New()}
}

// Target starts the declaration of a new target, flushing the previous one
// into the registry.
func (b *Builder) Target(name, description string) *Builder {
	b.flush()
	b.pending = &Target{
		Name:        name,
		Description: description,
		Phony:       true,
	}
	return b
}

// Deps appends prerequisite target names to the current declaration, in the
// order they must complete.
func (b *Builder) Deps(names ...string) *Builder {
	if b.pending == nil {
		b.fail(errors.New("Deps called before Target"))
		return b
	}
	b.pending.Prereqs = append(b.pending.Prereqs, names...)
	return b
}

// Run appends shell command lines to the current declaration, in the order
// they execute. Command strings are opaque to the engine; the shell owns any
// $(...) or variable expansion inside them.
func (b *Builder) Run(commands ...string) *Builder {
	if b.pending == nil {
		b.fail(errors.New("Run called before Target"))
		return b
	}
	b.pending.Commands = append(b.pending.Commands, commands...)
	return b
}

// File marks the current declaration as producing a real file artifact
// rather than being phony.
func (b *Builder) File() *Builder {
	if b.pending == nil {
		b.fail(errors.New("File called before Target"))
		return b
	}
	b.pending.Phony = false
	return b
}

// Default names the target selected when the operator requests none.
func (b *Builder) Default(name string) *Builder {
	b.flush()
	b.defaultName = name
	return b
}

// Build flushes the last declaration and validates the assembled registry:
// the default target and every declared prerequisite must resolve to a
// registered target. Cycles are not checked here; the resolver detects them
// per request.
func (b *Builder) Build() (*Registry, error) {
	b.flush()
	if b.err != nil {
		return nil, b.err
	}

	if b.defaultName != "" {
		if err := b.reg.SetDefault(b.defaultName); err != nil {
			return nil, fmt.Errorf("default target: %w", err)
		}
	}

	for _, name := range b.reg.Names() {
		target, err := b.reg.Lookup(name)
		if err != nil {
			return nil, err
		}
		for _, prereq := range target.Prereqs {
			if _, err := b.reg.Lookup(prereq); err != nil {
				return nil, fmt.Errorf("target %q: %w", name, err)
			}
		}
	}

	return b.reg, nil
}

// flush registers the pending declaration, recording the first error seen.
func (b *Builder) flush() {
	if b.pending == nil {
		return
	}
	if err := b.reg.Register(*b.pending); err != nil {
		b.fail(err)
	}
	b.pending = nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
