// Package stats derives dashboard figures from a complaint list.
package stats

import (
	"math"

	"civisafe/models"
)

// All disables a filter field, like the empty string.
const All = "all"

// Summary holds counts by status and category.
type Summary struct {
	Total          int
	ByStatus       map[models.Status]int
	ByCategory     map[models.Category]int
	ResolutionRate float64 // resolved / total, 0 when empty
}

// Compute scans list once. Every known status and category has an entry, possibly zero.
// Complaints with an unknown status or category are not counted.
func Compute(list []models.Complaint) Summary {
	s := Summary{
		ByStatus:   make(map[models.Status]int, len(models.Statuses)),
		ByCategory: make(map[models.Category]int, len(models.Categories)),
	}
	for _, st := range models.Statuses {
		s.ByStatus[st] = 0
	}
	for _, c := range models.Categories {
		s.ByCategory[c] = 0
	}
	for _, c := range list {
		if !c.Status.Valid() || !c.Category.Valid() {
			continue
		}
		s.Total++
		s.ByStatus[c.Status]++
		s.ByCategory[c.Category]++
	}
	if s.Total > 0 {
		s.ResolutionRate = float64(s.ByStatus[models.StatusResolved]) / float64(s.Total)
	}
	return s
}

func (s Summary) Pending() int  { return s.ByStatus[models.StatusPending] }
func (s Summary) InReview() int { return s.ByStatus[models.StatusInReview] }
func (s Summary) Resolved() int { return s.ByStatus[models.StatusResolved] }

// CategoryShare is the fraction of complaints in category c, 0 when empty.
func (s Summary) CategoryShare(c models.Category) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.ByCategory[c]) / float64(s.Total)
}

// ResolutionPercent is the resolution rate rounded to a whole percentage.
func (s Summary) ResolutionPercent() int {
	return int(math.Round(s.ResolutionRate * 100))
}

// Filter selects complaints by status and category. A field left empty or set
// to All is not applied; set fields must all match.
type Filter struct {
	Status   models.Status
	Category models.Category
}

func (f Filter) statusApplies() bool {
	return f.Status != "" && f.Status != All
}

func (f Filter) categoryApplies() bool {
	return f.Category != "" && f.Category != All
}

// Match reports whether c passes the filter.
func (f Filter) Match(c models.Complaint) bool {
	if f.statusApplies() && c.Status != f.Status {
		return false
	}
	if f.categoryApplies() && c.Category != f.Category {
		return false
	}
	return true
}

// Apply returns the complaints of list that match, in their original order.
func (f Filter) Apply(list []models.Complaint) []models.Complaint {
	out := make([]models.Complaint, 0, len(list))
	for _, c := range list {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Recent returns the first n complaints of list.
func Recent(list []models.Complaint, n int) []models.Complaint {
	if n <= 0 {
		return []models.Complaint{}
	}
	if n > len(list) {
		n = len(list)
	}
	out := make([]models.Complaint, n)
	copy(out, list[:n])
	return out
}
