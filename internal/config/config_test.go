package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"STORAGE_DRIVER", "DB_PATH", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"REDIS_PREFIX", "LOG_LEVEL", "LOG_DEVELOPMENT", "SIMULATED_DELAY", "SEED_ENABLED"} {
		// Register restore via t.Setenv, then drop the variable for this test.
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.Path == "" {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if !cfg.Seed.Enabled {
		t.Fatalf("seed should be enabled by default")
	}
	if cfg.UX.SimulatedDelay != 0 {
		t.Fatalf("expected no delay by default, got %s", cfg.UX.SimulatedDelay)
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SIMULATED_DELAY", "1500ms")
	t.Setenv("SEED_ENABLED", "false")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Driver != DriverRedis || cfg.Storage.RedisAddr != "cache:6380" || cfg.Storage.RedisDB != 3 {
		t.Fatalf("unexpected storage: %+v", cfg.Storage)
	}
	if cfg.UX.SimulatedDelay != 1500*time.Millisecond {
		t.Fatalf("delay = %s", cfg.UX.SimulatedDelay)
	}
	if cfg.Seed.Enabled {
		t.Fatalf("seed should be disabled")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"STORAGE_DRIVER":  "postgres",
		"REDIS_DB":        "two",
		"SIMULATED_DELAY": "soon",
		"LOG_DEVELOPMENT": "maybe",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, val)
			}
		})
	}
}

func TestDefault_IsValidMemoryConfig(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Storage.Driver != DriverMemory {
		t.Fatalf("driver = %s", cfg.Storage.Driver)
	}
}

func TestString_MasksPassword(t *testing.T) {
	cfg := Default()
	cfg.Storage.RedisPassword = "hunter2"
	if s := cfg.String(); strings.Contains(s, "hunter2") {
		t.Fatalf("password leaked: %s", s)
	}
}
