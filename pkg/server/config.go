package server

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/NVIDIA/nictagadm/pkg/defaults"
)

// EnvPrefix is the prefix of environment variables that override settings,
// e.g. NICTAG_RATE_LIMIT=50.
const EnvPrefix = "NICTAG_"

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	cfg := &Config{
		Address:         "",
		Port:            defaults.ServerPort,
		RateLimit:       defaults.ServerRateLimit,
		RateLimitBurst:  defaults.ServerRateLimitBurst,
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
		HandlerTimeout:  defaults.HandlerTimeout,
		LogLevel:        slog.LevelInfo.String(),
	}

	applyLegacyEnv(cfg)

	return cfg
}

// applyLegacyEnv honors the unprefixed PORT and LOG_LEVEL variables.
func applyLegacyEnv(cfg *Config) {
	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Port = port
		}
	}

	if logLevelStr := os.Getenv("LOG_LEVEL"); logLevelStr != "" {
		cfg.LogLevel = logLevelStr
	}
}

// LoadConfig layers defaults, the optional YAML settings file at path and
// NICTAG_-prefixed environment variables, in increasing precedence.
func LoadConfig(path string) (*Config, error) {
	base := DefaultConfig()
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"address":          base.Address,
		"port":             base.Port,
		"rate_limit":       float64(base.RateLimit),
		"rate_limit_burst": base.RateLimitBurst,
		"read_timeout":     base.ReadTimeout.String(),
		"write_timeout":    base.WriteTimeout.String(),
		"idle_timeout":     base.IdleTimeout.String(),
		"shutdown_timeout": base.ShutdownTimeout.String(),
		"handler_timeout":  base.HandlerTimeout.String(),
		"log_level":        base.LogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive, got %v", c.RateLimit)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate_limit_burst must be positive, got %d", c.RateLimitBurst)
	}
	return nil
}
