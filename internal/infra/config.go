package infra

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cryptoview/internal/domain"

	"gopkg.in/yaml.v3"
)

// Config holds every application setting. The config file is optional: running
// the binary with no file uses the built-in defaults, and environment
// variables override select fields afterwards.
type Config struct {
	App struct {
		Name string `yaml:"name"`
	} `yaml:"app"`

	API struct {
		Binance struct {
			RestURL    string `yaml:"rest_url"`
			TimeoutSec int    `yaml:"timeout_sec"`
		} `yaml:"binance"`
	} `yaml:"api"`

	UI struct {
		Title           string `yaml:"title"`
		FetchIntervalMS int    `yaml:"fetch_interval_ms"`
		PollTimeoutMS   int    `yaml:"poll_timeout_ms"`
	} `yaml:"ui"`

	Symbols []domain.SymbolConfig `yaml:"symbols"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.App.Name = "cryptoview"
	cfg.API.Binance.RestURL = "https://api.binance.com"
	cfg.API.Binance.TimeoutSec = 5
	cfg.UI.Title = "Crypto Price Tracker"
	cfg.UI.FetchIntervalMS = 1000
	cfg.UI.PollTimeoutMS = 250
	cfg.Symbols = domain.DefaultSymbols()
	cfg.Logging.Level = "info"
	return cfg
}

// LoadConfig reads the config file at path and parses it. A missing file is
// not an error: the defaults stand.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.API.Binance.RestURL, "http://") && !strings.HasPrefix(c.API.Binance.RestURL, "https://") {
		return fmt.Errorf("invalid Binance REST URL: %s", c.API.Binance.RestURL)
	}
	if c.API.Binance.TimeoutSec <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}

	if c.UI.FetchIntervalMS <= 0 {
		return fmt.Errorf("fetch interval must be positive")
	}
	if c.UI.PollTimeoutMS <= 0 {
		return fmt.Errorf("poll timeout must be positive")
	}

	if len(c.Symbols) == 0 {
		return fmt.Errorf("at least one symbol is required")
	}
	for _, sc := range c.Symbols {
		if sc.Symbol == "" {
			return fmt.Errorf("symbol ticker must not be empty")
		}
		if sc.Precision < 0 {
			return fmt.Errorf("precision for %s must not be negative", sc.Symbol)
		}
	}

	return nil
}

// overrideWithEnv overrides config values from environment variables when set.
func overrideWithEnv(cfg *Config) {
	if url := os.Getenv("CRYPTOVIEW_BINANCE_URL"); url != "" {
		cfg.API.Binance.RestURL = url
	}
	if level := os.Getenv("CRYPTOVIEW_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
