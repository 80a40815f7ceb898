package repository

import (
	"time"

	"civisafe/models"
)

// SeedComplaints returns a fresh copy of the built-in example complaints.
// They are never persisted; edits to them live only until the next reload.
func SeedComplaints() []models.Complaint {
	return []models.Complaint{
		{
			ID:          "1",
			Title:       "Broken streetlight in parking lot",
			Category:    models.CategorySafety,
			Description: "The streetlight near the main entrance has been flickering for weeks and now completely stopped working. This creates a safety hazard for students walking to their cars at night.",
			Status:      models.StatusInReview,
			SubmittedBy: "student@college.edu",
			SubmittedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Comments:    []string{"Investigation started", "Maintenance team notified"},
		},
		{
			ID:          "2",
			Title:       "Water leak in Building A restroom",
			Category:    models.CategoryInfrastructure,
			Description: "There is a significant water leak in the second floor restroom of Building A. The floor is constantly wet and slippery.",
			Status:      models.StatusResolved,
			SubmittedBy: "faculty@college.edu",
			SubmittedAt: time.Date(2024, 1, 10, 14, 20, 0, 0, time.UTC),
			Comments:    []string{"Plumber contacted", "Leak fixed on 2024-01-12"},
		},
		{
			ID:          "3",
			Title:       "Inappropriate behavior in cafeteria",
			Category:    models.CategoryHarassment,
			Description: "A staff member has been making inappropriate comments to students during lunch hours. Multiple students have reported feeling uncomfortable.",
			Status:      models.StatusPending,
			SubmittedBy: "anonymous",
			SubmittedAt: time.Date(2024, 1, 20, 9, 15, 0, 0, time.UTC),
			Comments:    []string{},
		},
		{
			ID:          "4",
			Title:       "Parking space allocation issue",
			Category:    models.CategoryOthers,
			Description: "The new parking allocation system is not working properly. Many faculty members are unable to find designated parking spots.",
			Status:      models.StatusInReview,
			SubmittedBy: "admin@college.edu",
			SubmittedAt: time.Date(2024, 1, 18, 16, 45, 0, 0, time.UTC),
			Comments:    []string{"Reviewing parking policy"},
		},
		{
			ID:          "5",
			Title:       "Elevator malfunction in Library",
			Category:    models.CategoryInfrastructure,
			Description: "The elevator in the main library building has been making strange noises and occasionally stops between floors.",
			Status:      models.StatusPending,
			SubmittedBy: "librarian@college.edu",
			SubmittedAt: time.Date(2024, 1, 22, 11, 0, 0, 0, time.UTC),
			Comments:    []string{},
		},
	}
}
