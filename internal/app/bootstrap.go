package app

import (
	"log/slog"

	"cryptoview/internal/infra"
)

// ConfigPath is where the optional configuration file lives. A missing file
// falls back to the built-in defaults.
const ConfigPath = "configs/config.yaml"

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config *infra.Config
	Logger *slog.Logger
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads configuration and wires the logger. The terminal screen is
// acquired by the caller so its release can be scoped around the whole run.
func (b *Bootstrap) Initialize() error {
	cfg, err := infra.LoadConfig(ConfigPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)
	b.Logger = logger

	return nil
}
