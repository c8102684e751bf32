package models

import (
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/habitgrid/internal/constants"
)

// Habit is the sole persisted entity: a named goal with a bounded
// [StartDate, EndDate] window and the set of days it was fulfilled.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date"` // YYYY-MM-DD format
	EndDate   string    `json:"end_date"`   // YYYY-MM-DD format
	CreatedAt time.Time `json:"created_at"`
	// CompletionDates is semantically a set of YYYY-MM-DD strings, kept
	// sorted and deduplicated by Normalize. Records migrated from older
	// schemas may carry days outside the habit window.
	CompletionDates []string `json:"completion_dates"`
}

// Normalize repairs a record read from storage so the statistics code can
// assume a fully populated, schema-valid habit: a nil completion set becomes
// empty, entries are trimmed, malformed days dropped, duplicates removed and
// the remainder sorted ascending.
func (h *Habit) Normalize() {
	h.Name = strings.TrimSpace(h.Name)

	days := make([]string, 0, len(h.CompletionDates))
	for _, d := range h.CompletionDates {
		d = strings.TrimSpace(d)
		if _, err := time.Parse(constants.DateFormat, d); err != nil {
			continue
		}
		days = append(days, d)
	}
	slices.Sort(days)
	h.CompletionDates = slices.Compact(days)
}

// Completed reports whether day is a member of the completion set.
func (h *Habit) Completed(day string) bool {
	return slices.Contains(h.CompletionDates, day)
}

// ToggleCompletion flips membership of day in the completion set. Toggling
// the same day twice is a no-op overall.
func (h *Habit) ToggleCompletion(day string) {
	if i := slices.Index(h.CompletionDates, day); i >= 0 {
		h.CompletionDates = slices.Delete(h.CompletionDates, i, i+1)
		return
	}
	h.CompletionDates = append(h.CompletionDates, day)
	slices.Sort(h.CompletionDates)
}
