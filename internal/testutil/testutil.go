package testutil

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"civisafe/internal/db"
	"civisafe/internal/kv"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// The database is closed through t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	// Shared cache lets every pooled connection see the same database.
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// SQLiteStore returns a kv store over a fresh in-memory database.
func SQLiteStore(t *testing.T, name string) *kv.SQLiteStore {
	t.Helper()
	return kv.NewSQLiteStore(OpenInMemoryDB(t, name))
}

// RedisStore returns a store against the server named by CIVISAFE_TEST_REDIS_ADDR,
// skipping the test when the variable is unset. Keys are namespaced per test.
func RedisStore(t *testing.T) *kv.RedisStore {
	t.Helper()
	addr := os.Getenv("CIVISAFE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CIVISAFE_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	return kv.NewRedisStore(client, "civisafe-test:"+t.Name()+":")
}

// Clock is a fixed time source.
type Clock struct {
	now time.Time
}

// NewClock starts a clock at t.
func NewClock(t time.Time) *Clock {
	return &Clock{now: t}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time { return c.now }
