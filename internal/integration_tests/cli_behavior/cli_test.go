package integration_tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/drover/internal/app"
	"github.com/vk/drover/internal/cli"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy path with all flags",
			args: []string{
				"--log-level=debug",
				"--log-format=json",
				"-plan",
				"release",
			},
			expectedConfig: &app.Config{
				TargetName: "release",
				ShowPlan:   true,
				LogLevel:   "debug",
				LogFormat:  "json",
			},
		},
		{
			name: "Positional target with defaults",
			args: []string{"test"},
			expectedConfig: &app.Config{
				TargetName: "test",
				LogLevel:   "info",
				LogFormat:  "text",
			},
		},
		{
			name: "No arguments selects the default target",
			args: []string{},
			expectedConfig: &app.Config{
				TargetName: "",
				LogLevel:   "info",
				LogFormat:  "text",
			},
		},
		{
			name: "Shorthand plan flag",
			args: []string{"-n", "build"},
			expectedConfig: &app.Config{
				TargetName: "build",
				ShowPlan:   true,
				LogLevel:   "info",
				LogFormat:  "text",
			},
		},
		{
			name: "Shorthand list flag",
			args: []string{"-l"},
			expectedConfig: &app.Config{
				ListTargets: true,
				LogLevel:    "info",
				LogFormat:   "text",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:       "Version flag triggers clean exit",
			args:       []string{"-version"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "drover")
			},
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"--log-level=foo", "test"},
			expectErr: true,
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"--log-format=yaml", "test"},
			expectErr: true,
		},
		{
			name:      "More than one target returns an error",
			args:      []string{"build", "test"},
			expectErr: true,
		},
		{
			name:      "Plan and list together return an error",
			args:      []string{"-plan", "-list"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			appConfig, shouldExit, err := cli.Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				var exitErr *cli.ExitError
				require.ErrorAs(t, err, &exitErr, "Expected error to be of type ExitError")
				require.Equal(t, 2, exitErr.Code, "usage errors carry exit code 2")
				return
			}
			require.NoError(t, err)

			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, appConfig); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}
