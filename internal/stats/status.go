package stats

import (
	"fmt"

	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/models"
)

// Status is a habit's lifecycle state relative to an evaluation day. It is
// recomputed on every evaluation and never stored.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusActive     Status = "active"
	StatusCompleted  Status = "completed"
)

// Classify determines where today falls relative to the habit window.
func Classify(h models.Habit, today string) Status {
	switch {
	case today < h.StartDate:
		return StatusNotStarted
	case today > h.EndDate:
		return StatusCompleted
	default:
		return StatusActive
	}
}

// StatusMessage returns the human-readable line shown on a habit card.
func StatusMessage(h models.Habit, today string) string {
	switch Classify(h, today) {
	case StatusNotStarted:
		return fmt.Sprintf("starts on %s", h.StartDate)
	case StatusCompleted:
		return fmt.Sprintf("ended on %s", h.EndDate)
	default:
		remaining := dateutil.DaysBetween(today, h.EndDate) + 1
		if remaining == 1 {
			return "1 day remaining"
		}
		return fmt.Sprintf("%d days remaining", remaining)
	}
}
