package app

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/vk/drover/internal/ctxlog"
	"github.com/vk/drover/internal/dag"
	"github.com/vk/drover/internal/executor"
)

// Run executes the main application logic: select the target, resolve its
// plan, then either display diagnostics or execute the plan.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListTargets {
		return a.listTargets()
	}

	name := a.config.TargetName
	if name == "" {
		name = a.registry.Default()
		a.logger.Debug("No target requested, falling back to the default.", "target", name)
	}

	plan, err := dag.Resolve(a.registry, name)
	if err != nil {
		return fmt.Errorf("failed to resolve target %q: %w", name, err)
	}
	a.logger.Debug("Execution plan resolved.", "plan", plan.Targets)

	if a.config.ShowPlan {
		fmt.Fprintln(a.outW, plan)
		return nil
	}

	a.logger.Info("🚀 Starting run.", "target", name, "plan_length", len(plan.Targets))
	exec := executor.New(a.runner, a.outW)
	if err := exec.Run(ctx, plan, a.registry); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 Run finished.")
	return nil
}

// listTargets prints every registered target with its description in
// declaration order, marking the default with an asterisk.
func (a *App) listTargets() error {
	w := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	for _, name := range a.registry.Names() {
		target, err := a.registry.Lookup(name)
		if err != nil {
			return err
		}
		marker := ""
		if name == a.registry.Default() {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%s\t%s\n", name, marker, target.Description)
	}
	return w.Flush()
}
