package integration_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/drover/internal/app"
	"github.com/vk/drover/internal/dag"
	"github.com/vk/drover/internal/registry"
	"github.com/vk/drover/internal/testutil"
)

// A dependency cycle is a definition error: it is caught during resolution,
// before a single command has run.
func TestErrorHandling_CycleRunsZeroCommands(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The builder only checks that prerequisites exist, so the cycle is
	// declared directly and surfaces at resolution.
	reg := registry.New()
	require.NoError(t, reg.Register(registry.Target{
		Name: "a", Prereqs: []string{"b"}, Commands: []string{"run-a"},
	}))
	require.NoError(t, reg.Register(registry.Target{
		Name: "b", Prereqs: []string{"a"}, Commands: []string{"run-b"},
	}))

	runner := &testutil.RecorderRunner{}
	testApp, _, _ := app.SetupAppTest(t, &app.Config{TargetName: "a"}, reg, runner)

	// --- Act ---
	runErr := testApp.Run(context.Background())

	// --- Assert ---
	require.Error(t, runErr)

	var cycleErr *dag.CyclicDependencyError
	require.True(t, errors.As(runErr, &cycleErr), "expected a CyclicDependencyError in the chain, got: %v", runErr)
	assert.Equal(t, []string{"a", "b", "a"}, cycleErr.Cycle)

	assert.Zero(t, runner.CallCount(), "definition errors must guarantee zero side effects")
}
