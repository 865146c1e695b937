package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// TargetName is the requested target. Empty selects the registry's
	// default target.
	TargetName string

	// ShowPlan prints the resolved execution plan and runs nothing.
	ShowPlan bool
	// ListTargets prints the registered targets and runs nothing.
	ListTargets bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it by reference.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ShowPlan && cfg.ListTargets {
		return nil, errors.New("the plan and list modes are mutually exclusive")
	}
	return &cfg, nil
}
