package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Log         LogConfig         `yaml:"log"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Preference store drivers.
const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// PreferencesConfig selects and configures the key-value settings store.
type PreferencesConfig struct {
	Driver        string `yaml:"driver"         env:"PREFERENCES_DRIVER"         env-default:"redis"`
	RedisAddr     string `yaml:"redis_addr"     env:"PREFERENCES_REDIS_ADDR"     env-default:"localhost:6379"`
	RedisDB       int    `yaml:"redis_db"       env:"PREFERENCES_REDIS_DB"       env-default:"0"`
	RedisPassword string `yaml:"redis_password" env:"PREFERENCES_REDIS_PASSWORD"`
	KeyPrefix     string `yaml:"key_prefix"     env:"PREFERENCES_KEY_PREFIX"     env-default:"simplehiit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig controls the /metrics endpoint served while a watch command runs.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"false"`
	Addr    string `yaml:"addr"    env:"METRICS_ADDR"    env-default:":9464"`
}
