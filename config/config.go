// Package config loads the deployment-time settings for the signal/slot
// module: which lock policy every signal and slot endpoint uses, and how the
// module logs. Values come from viper, so they may be supplied by a config
// file, environment variables, or programmatic defaults.
//
// The lock policy is a one-shot choice. Apply must run before the first
// signal or endpoint is created; once a locker exists the policy is frozen
// and Apply fails.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/sigslot/internal/logging"
	"github.com/Iron-Ham/sigslot/lockpolicy"
)

// Config represents the complete module configuration.
type Config struct {
	Lock    LockConfig    `mapstructure:"lock"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LockConfig selects the mutual-exclusion strategy.
type LockConfig struct {
	// Policy is the lock policy for every signal and endpoint in the
	// process. Options: "single", "global", "per_instance".
	// Mixed policies between objects that interoperate are not supported,
	// which is why this is a process-wide setting.
	Policy string `mapstructure:"policy"`
}

// LoggingConfig controls the module's debug logging.
type LoggingConfig struct {
	// Enabled controls whether the module logs at all (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "text" (default: "json")
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Lock: LockConfig{
			Policy: lockpolicy.PerInstance.String(),
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   logging.LevelInfo,
			Format:  logging.FormatJSON,
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("lock.policy", defaults.Lock.Policy)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)
}

// Load reads the configuration from viper into a Config struct and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// Apply installs the configuration: the lock policy becomes the process-wide
// default, and the returned logger (writing to w) reflects the logging
// settings. Apply must run before any signal or slot endpoint is created;
// afterwards it fails with lockpolicy.ErrFrozen.
func (c *Config) Apply(w io.Writer) (*slog.Logger, error) {
	kind, err := lockpolicy.ParseKind(c.Lock.Policy)
	if err != nil {
		return nil, err
	}
	if err := lockpolicy.SetDefault(kind); err != nil {
		return nil, fmt.Errorf("applying lock policy %q: %w", c.Lock.Policy, err)
	}

	if !c.Logging.Enabled {
		return logging.Discard(), nil
	}
	return logging.New(w, c.Logging.Level, c.Logging.Format), nil
}
