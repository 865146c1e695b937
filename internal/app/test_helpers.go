package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/drover/internal/executor"
	"github.com/vk/drover/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. When a runner
// is provided it replaces the shell, so no real subprocess is spawned.
func SetupAppTest(t *testing.T, appConfig *Config, reg *registry.Registry, runner executor.Runner) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp := NewApp(outBuffer, logBuffer, appConfig, reg)
	if runner != nil {
		testApp.runner = runner
	}

	t.Cleanup(func() {
		if os.Getenv("DROVER_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
