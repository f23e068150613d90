package app

import "errors"

// Config holds all the necessary configuration for an App instance to
// run.
type Config struct {
	SweepPath string // .hcl file or directory of sweep declarations

	LogFormat string
	LogLevel  string
	Plots     bool // render figures after materializing
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SweepPath == "" {
		return nil, errors.New("SweepPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
