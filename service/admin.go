package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"civisafe/internal/auth"
	"civisafe/internal/stats"
	"civisafe/models"
)

// RecentLimit is how many complaints the dashboard shows as recent.
const RecentLimit = 5

// Dashboard is the admin overview. Recent follows list order; Latest is
// ordered by submission time, newest first.
type Dashboard struct {
	Summary stats.Summary
	Recent  []models.Complaint
	Latest  []models.Complaint
}

// Complaints returns the working list narrowed by f.
func (s *Service) Complaints(ctx context.Context, f stats.Filter) ([]models.Complaint, error) {
	if _, err := s.require(ctx, auth.CapAdmin); err != nil {
		return nil, err
	}
	list, err := s.complaints.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(list), nil
}

// Complaint returns one complaint, or nil when absent.
func (s *Service) Complaint(ctx context.Context, id string) (*models.Complaint, error) {
	if _, err := s.require(ctx, auth.CapAdmin); err != nil {
		return nil, err
	}
	return s.complaints.Get(ctx, id)
}

// Reload discards in-memory edits and rebuilds the list from seed and storage.
func (s *Service) Reload(ctx context.Context) ([]models.Complaint, error) {
	if _, err := s.require(ctx, auth.CapAdmin); err != nil {
		return nil, err
	}
	return s.complaints.LoadAll(ctx)
}

func (s *Service) ChangeStatus(ctx context.Context, id string, status models.Status) error {
	if _, err := s.require(ctx, auth.CapAdmin); err != nil {
		return err
	}
	if err := s.complaints.ChangeStatus(ctx, id, status); err != nil {
		return err
	}
	s.log.Info("status changed", zap.String("id", id), zap.String("status", string(status)))
	return nil
}

func (s *Service) AddComment(ctx context.Context, id, text string) error {
	if _, err := s.require(ctx, auth.CapAdmin); err != nil {
		return err
	}
	return s.complaints.AppendComment(ctx, id, text)
}

// Delete removes a complaint. Admins may delete any complaint; users only
// their own submissions. Unknown ids are ignored.
func (s *Service) Delete(ctx context.Context, id string) error {
	sess, err := s.require(ctx, auth.CapUser, auth.CapAdmin)
	if err != nil {
		return err
	}
	if !sess.IsAdmin() {
		c, err := s.complaints.Get(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return nil
		}
		if s.complaints.IsSeed(id) || !strings.EqualFold(c.SubmittedBy, sess.Email) {
			return fmt.Errorf("%w: complaint %s belongs to another submitter", auth.ErrForbidden, id)
		}
	}
	return s.complaints.Delete(ctx, id)
}

// Stats computes the admin dashboard over the full working list.
func (s *Service) Stats(ctx context.Context) (*Dashboard, error) {
	if _, err := s.require(ctx, auth.CapAdmin); err != nil {
		return nil, err
	}
	list, err := s.complaints.List(ctx)
	if err != nil {
		return nil, err
	}
	newest, err := s.complaints.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Summary: stats.Compute(list),
		Recent:  stats.Recent(list, RecentLimit),
		Latest:  stats.Recent(newest, RecentLimit),
	}, nil
}
