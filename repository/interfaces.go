package repository

import (
	"context"

	"civisafe/models"
)

// SessionRepositoryI defines operations on the single current session.
type SessionRepositoryI interface {
	Set(ctx context.Context, s *models.Session) error
	Get(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

// ComplaintRepositoryI defines operations on complaints.
type ComplaintRepositoryI interface {
	LoadAll(ctx context.Context) ([]models.Complaint, error)
	Persist(ctx context.Context, userComplaints []models.Complaint) error
	Create(ctx context.Context, nc models.NewComplaint) (*models.Complaint, error)
	ChangeStatus(ctx context.Context, id string, status models.Status) error
	AppendComment(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Complaint, error)
	Get(ctx context.Context, id string) (*models.Complaint, error)
	UserComplaints(ctx context.Context) ([]models.Complaint, error)
	ListBySubmitter(ctx context.Context, email string) ([]models.Complaint, error)
	ListNewestFirst(ctx context.Context) ([]models.Complaint, error)
}

var (
	_ SessionRepositoryI   = (*SessionRepository)(nil)
	_ ComplaintRepositoryI = (*ComplaintRepository)(nil)
)
