package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/drover/internal/dag"
)

func TestNew(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)
	require.NotNil(t, reg)

	t.Run("default target is build", func(t *testing.T) {
		assert.Equal(t, DefaultTarget, reg.Default())
		_, err := reg.Lookup(DefaultTarget)
		assert.NoError(t, err)
	})

	t.Run("every target resolves", func(t *testing.T) {
		for _, name := range reg.Names() {
			_, err := dag.Resolve(reg, name)
			assert.NoError(t, err, "target %q must have an acyclic, fully registered subtree", name)
		}
	})

	t.Run("every target is phony with a description", func(t *testing.T) {
		for _, name := range reg.Names() {
			target, err := reg.Lookup(name)
			require.NoError(t, err)
			assert.True(t, target.Phony, "target %q", name)
			assert.NotEmpty(t, target.Description, "target %q", name)
		}
	})
}

func TestNew_PlanShapes(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	t.Run("all plans its shared prerequisite exactly once", func(t *testing.T) {
		// deps is reachable both via build and via check -> test.
		plan, err := dag.Resolve(reg, "all")
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"deps", "clean", "build", "lint", "test", "check", "all"},
			plan.Targets,
		)
	})

	t.Run("build cleans before packaging", func(t *testing.T) {
		plan, err := dag.Resolve(reg, "build")
		require.NoError(t, err)
		assert.Equal(t, []string{"deps", "clean", "build"}, plan.Targets)
	})

	t.Run("version releases only after check", func(t *testing.T) {
		plan, err := dag.Resolve(reg, "version")
		require.NoError(t, err)
		assert.Equal(t, []string{"lint", "deps", "test", "check", "version"}, plan.Targets)
	})
}
