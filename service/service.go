// Package service is the complaint tracker's entry point. Every operation reads
// the current session and checks the role it needs before touching data.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"civisafe/internal/auth"
	"civisafe/internal/config"
	"civisafe/internal/kv"
	"civisafe/internal/logging"
	"civisafe/models"
	"civisafe/repository"
)

// Options tunes a Service. The zero value is usable.
type Options struct {
	// SimulatedDelay is waited before login and submission complete.
	SimulatedDelay time.Duration
	// DisableSeed starts with no example complaints.
	DisableSeed bool
	// Now and NewID override the clock and the complaint id allocator.
	Now   func() time.Time
	NewID func() string
}

// Service implements the user and admin flows over a key-value store.
type Service struct {
	sessions   *repository.SessionRepository
	complaints *repository.ComplaintRepository
	log        *zap.Logger
	delay      time.Duration
}

func New(store kv.Store, log *zap.Logger, opts Options) *Service {
	log = logging.OrNop(log)
	copts := []repository.ComplaintOption{repository.WithLogger(log)}
	if opts.DisableSeed {
		copts = append(copts, repository.WithSeed(nil))
	}
	if opts.Now != nil {
		copts = append(copts, repository.WithClock(opts.Now))
	}
	if opts.NewID != nil {
		copts = append(copts, repository.WithIDGenerator(opts.NewID))
	}
	return &Service{
		sessions:   repository.NewSessionRepository(store, log),
		complaints: repository.NewComplaintRepository(store, copts...),
		log:        log.Named("service"),
		delay:      opts.SimulatedDelay,
	}
}

// Open builds a Service from configuration. The returned function closes the
// underlying store.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Service, func() error, error) {
	store, closeFn, err := kv.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	logging.OrNop(log).Info("storage opened", zap.String("driver", cfg.Storage.Driver))
	svc := New(store, log, Options{
		SimulatedDelay: cfg.UX.SimulatedDelay,
		DisableSeed:    !cfg.Seed.Enabled,
	})
	return svc, closeFn, nil
}

// OpenFromEnv loads configuration from the environment (and an optional .env
// file), builds the logger and opens the Service. The returned function closes
// the store and flushes the logger.
func OpenFromEnv(ctx context.Context) (*Service, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("configuration loaded", zap.Stringer("config", cfg))
	svc, closeStore, err := Open(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}
	return svc, func() error {
		err := closeStore()
		_ = log.Sync()
		return err
	}, nil
}

// Login validates the credentials and starts a session. A mismatch returns
// (nil, nil) and leaves any existing session untouched.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	sess, ok := auth.ValidateCredentials(email, password)
	if !ok {
		s.log.Info("login rejected", zap.String("email", email))
		return nil, nil
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info("login", zap.String("email", sess.Email), zap.String("role", string(sess.Role)))
	return sess, nil
}

// Logout ends the current session. It succeeds when no session exists.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("logout")
	return nil
}

// Current returns the active session, or nil.
func (s *Service) Current(ctx context.Context) (*models.Session, error) {
	return s.sessions.Get(ctx)
}

// require loads the session and checks it against the wanted capabilities.
func (s *Service) require(ctx context.Context, caps ...auth.Capability) (*models.Session, error) {
	sess, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireAny(sess, caps...); err != nil {
		s.log.Debug("access denied", zap.Error(err))
		return nil, err
	}
	return sess, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
