package service

import (
	"context"

	"civisafe/internal/auth"
	"civisafe/internal/stats"
	"civisafe/models"
)

// Submission is what a user fills in; the submitter comes from the session.
type Submission struct {
	Title             string
	Category          models.Category
	Description       string
	AttachmentPresent bool
}

// Submit files a new complaint as the signed-in user.
func (s *Service) Submit(ctx context.Context, in Submission) (*models.Complaint, error) {
	sess, err := s.require(ctx, auth.CapUser)
	if err != nil {
		return nil, err
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.complaints.Create(ctx, models.NewComplaint{
		Title:             in.Title,
		Category:          in.Category,
		Description:       in.Description,
		SubmittedBy:       sess.Email,
		AttachmentPresent: in.AttachmentPresent,
	})
}

// MyComplaints lists the signed-in user's submissions with their own summary.
func (s *Service) MyComplaints(ctx context.Context) ([]models.Complaint, stats.Summary, error) {
	sess, err := s.require(ctx, auth.CapUser)
	if err != nil {
		return nil, stats.Summary{}, err
	}
	list, err := s.complaints.ListBySubmitter(ctx, sess.Email)
	if err != nil {
		return nil, stats.Summary{}, err
	}
	return list, stats.Compute(list), nil
}
