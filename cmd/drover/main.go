package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/drover/internal/app"
	"github.com/vk/drover/internal/cli"
	"github.com/vk/drover/internal/lifecycle"
)

// main is the entrypoint for the drover binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// On interrupt, stop scheduling further commands and targets. The
	// currently running subprocess finishes on its own terms.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCodeFor(err))
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	reg, err := lifecycle.New()
	if err != nil {
		return fmt.Errorf("failed to construct the built-in target registry: %w", err)
	}

	droverApp := app.NewApp(outW, errW, appConfig, reg)
	return droverApp.Run(ctx)
}
