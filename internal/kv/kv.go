// Package kv is the persistent key-value storage the tracker serializes its
// state into. Values are opaque text; callers own the encoding.
package kv

import (
	"context"
	"errors"
)

// Store is the storage contract shared by every backend.
// Get reports ok=false when the key is absent; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ErrEmptyKey is returned by every backend for a blank key.
var ErrEmptyKey = errors.New("kv: empty key")
