package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"civisafe/internal/kv"
	"civisafe/models"
)

// SessionKey is the storage key of the current session.
const SessionKey = "currentUser"

type SessionRepository struct {
	store kv.Store
	log   *zap.Logger
}

func NewSessionRepository(store kv.Store, log *zap.Logger) *SessionRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionRepository{store: store, log: log.Named("session")}
}

// Set persists s, replacing any previous session.
func (r *SessionRepository) Set(ctx context.Context, s *models.Session) error {
	if s == nil || s.Email == "" || !s.Role.Valid() {
		return ErrInvalidSession
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.store.Set(ctx, SessionKey, string(b)); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Get returns the current session, or nil when none is stored.
// Unparseable data and unknown roles read as no session.
func (r *SessionRepository) Get(ctx context.Context) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	raw, ok, err := r.store.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		r.log.Warn("discarding malformed session", zap.Error(err))
		return nil, nil
	}
	if s.Email == "" || !s.Role.Valid() {
		r.log.Warn("discarding session with unknown role", zap.String("role", string(s.Role)))
		return nil, nil
	}
	return &s, nil
}

// Clear removes the persisted session. Clearing when none exists is not an error.
func (r *SessionRepository) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.store.Remove(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
