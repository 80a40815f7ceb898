package repository

import (
	"context"
	"sort"
	"strings"

	"civisafe/models"
)

// ListBySubmitter returns the persisted complaints submitted by email, in stored order.
// Seed complaints are not included. Email comparison is case-insensitive.
func (r *ComplaintRepository) ListBySubmitter(ctx context.Context, email string) ([]models.Complaint, error) {
	user, err := r.UserComplaints(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	out := make([]models.Complaint, 0, len(user))
	for _, c := range user {
		if strings.EqualFold(c.SubmittedBy, email) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListNewestFirst returns the working copy ordered by submittedAt desc, id desc.
func (r *ComplaintRepository) ListNewestFirst(ctx context.Context) ([]models.Complaint, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].SubmittedAt.Equal(list[j].SubmittedAt) {
			return list[i].SubmittedAt.After(list[j].SubmittedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}
