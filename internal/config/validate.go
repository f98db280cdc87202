package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be between 0 and max_conns (got %d)", c.Database.MinConns)
	}

	if err := c.Preferences.validate(); err != nil {
		return fmt.Errorf("preferences: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr is required when metrics are enabled")
	}

	return nil
}

func (p *PreferencesConfig) validate() error {
	switch p.Driver {
	case DriverMemory:
		return nil
	case DriverRedis:
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverRedis, DriverMemory, p.Driver)
	}

	if p.RedisAddr == "" {
		return fmt.Errorf("redis_addr is required for the redis driver")
	}
	if p.RedisDB < 0 {
		return fmt.Errorf("redis_db must be >= 0 (got %d)", p.RedisDB)
	}
	if strings.ContainsAny(p.KeyPrefix, " \t\n") {
		return fmt.Errorf("key_prefix must not contain whitespace (got %q)", p.KeyPrefix)
	}
	return nil
}
