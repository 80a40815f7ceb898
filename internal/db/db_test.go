package db

import (
	"testing"
)

func tableExists(t *testing.T, name string, open func() (int, error)) bool {
	t.Helper()
	n, err := open()
	if err != nil {
		t.Fatalf("query %s: %v", name, err)
	}
	return n > 0
}

func TestOpen_AppliesMigrationsAndRollsBack(t *testing.T) {
	d, err := Open("file:dbtest?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	count := func() (int, error) {
		var n int
		err := d.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv_store'`).Scan(&n)
		return n, err
	}
	if !tableExists(t, "kv_store", count) {
		t.Fatalf("kv_store table missing after Open")
	}

	// Re-running is a no-op.
	if err := Migrate(d); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	if err := RollbackLast(d); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if tableExists(t, "kv_store", count) {
		t.Fatalf("kv_store table should be dropped after rollback")
	}

	// Rolling back with nothing applied succeeds.
	if err := RollbackLast(d); err != nil {
		t.Fatalf("empty rollback: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	if err := Migrate(nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
