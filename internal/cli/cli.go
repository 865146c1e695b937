package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/drover/internal/app"
	"github.com/vk/drover/internal/buildinfo"
)

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("drover", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Drover - a declarative task runner for the local development lifecycle.

Usage:
  drover [options] [TARGET]

Arguments:
  TARGET
    Name of the target to run. Omitting it selects the default target.

Options:
`)
		flagSet.PrintDefaults()
	}

	planFlag := flagSet.Bool("plan", false, "Print the resolved execution plan without running anything.")
	nFlag := flagSet.Bool("n", false, "Print the resolved execution plan without running anything (shorthand).")
	listFlag := flagSet.Bool("list", false, "List the registered targets and exit.")
	lFlag := flagSet.Bool("l", false, "List the registered targets and exit (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintln(output, buildinfo.String())
		return nil, true, nil
	}

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("expected at most one target name, got %d arguments", flagSet.NArg()),
		}
	}
	targetName := flagSet.Arg(0)
	slog.Debug("Target name determined.", "target", targetName)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		TargetName:  targetName,
		ShowPlan:    *planFlag || *nFlag,
		ListTargets: *listFlag || *lFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
