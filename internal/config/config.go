package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers understood by kv.Open.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig
	Log     LogConfig
	UX      UXConfig
	Seed    SeedConfig
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Driver        string // sqlite | redis | memory
	Path          string // SQLite database file path
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string // namespace prepended to every key
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level       string // debug | info | warn | error
	Development bool
}

// UXConfig contains pacing settings for interactive flows.
type UXConfig struct {
	SimulatedDelay time.Duration // wait applied before login and submission complete
}

// SeedConfig controls the built-in example complaints.
type SeedConfig struct {
	Enabled bool
}

// Load reads an optional .env file, then environment variables with defaults,
// and validates the result.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	devLog, err := getEnvBool("LOG_DEVELOPMENT", false)
	if err != nil {
		return nil, err
	}
	delay, err := getEnvDuration("SIMULATED_DELAY", 0)
	if err != nil {
		return nil, err
	}
	seed, err := getEnvBool("SEED_ENABLED", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Storage: StorageConfig{
			Driver:        strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", DriverSQLite))),
			Path:          getEnv("DB_PATH", "civisafe.db"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			RedisPrefix:   getEnv("REDIS_PREFIX", "civisafe:"),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: devLog,
		},
		UX:   UXConfig{SimulatedDelay: delay},
		Seed: SeedConfig{Enabled: seed},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set, backed by memory.
// Intended for tests and embedding.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:      DriverMemory,
			Path:        "civisafe.db",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "civisafe:",
		},
		Log:  LogConfig{Level: "info"},
		Seed: SeedConfig{Enabled: true},
	}
}

// Validate checks settings that would otherwise fail later at open time.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("DB_PATH must not be empty for the sqlite driver")
		}
	case DriverRedis:
		if strings.TrimSpace(c.Storage.RedisAddr) == "" {
			return fmt.Errorf("REDIS_ADDR must not be empty for the redis driver")
		}
		if c.Storage.RedisDB < 0 {
			return fmt.Errorf("REDIS_DB must be >= 0, got %d", c.Storage.RedisDB)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want sqlite, redis or memory)", c.Storage.Driver)
	}
	if c.UX.SimulatedDelay < 0 {
		return fmt.Errorf("SIMULATED_DELAY must not be negative")
	}
	return nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	if value, exists := os.LookupEnv(key); exists {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		return b, nil
	}
	return defaultVal, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		return d, nil
	}
	return defaultVal, nil
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	pw := ""
	if c.Storage.RedisPassword != "" {
		pw = "***"
	}
	return fmt.Sprintf("Config{Storage: %s (path=%s redis=%s db=%d password=%s prefix=%q), Log: %s dev=%t, Delay: %s, Seed: %t}",
		c.Storage.Driver, c.Storage.Path, c.Storage.RedisAddr, c.Storage.RedisDB, pw, c.Storage.RedisPrefix,
		c.Log.Level, c.Log.Development, c.UX.SimulatedDelay, c.Seed.Enabled)
}
