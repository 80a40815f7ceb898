package models

import "time"

// Status represents where a complaint is in its triage lifecycle.
type Status string

const (
	StatusPending  Status = "pending"
	StatusInReview Status = "in-review"
	StatusResolved Status = "resolved"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{StatusPending, StatusInReview, StatusResolved}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusResolved:
		return true
	}
	return false
}

// Category classifies what a complaint is about.
type Category string

const (
	CategorySafety         Category = "safety"
	CategoryInfrastructure Category = "infrastructure"
	CategoryHarassment     Category = "harassment"
	CategoryOthers         Category = "others"
)

// Categories lists every valid category.
var Categories = []Category{CategorySafety, CategoryInfrastructure, CategoryHarassment, CategoryOthers}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySafety, CategoryInfrastructure, CategoryHarassment, CategoryOthers:
		return true
	}
	return false
}

// Complaint is a user-submitted issue tracked from pending to resolved.
// It is stored as JSON under the user complaints key.
type Complaint struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	SubmittedBy string    `json:"submittedBy"`
	SubmittedAt time.Time `json:"submittedAt"`
	// Comments keeps insertion order. Never nil once a complaint leaves the repository.
	Comments          []string `json:"comments"`
	AttachmentPresent bool     `json:"hasAttachment"`
}

// Clone returns a copy that shares no comment storage with c.
func (c Complaint) Clone() Complaint {
	out := c
	out.Comments = make([]string, len(c.Comments))
	copy(out.Comments, c.Comments)
	return out
}

// NewComplaint holds the user-supplied fields of a submission.
type NewComplaint struct {
	Title             string
	Category          Category
	Description       string
	SubmittedBy       string
	AttachmentPresent bool
}
