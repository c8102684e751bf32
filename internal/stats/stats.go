package stats

import (
	"math"
	"slices"

	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/models"
)

// Summary aggregates every derived figure for one habit at one evaluation
// day. It is what the CLI and TUI render.
type Summary struct {
	CurrentStreak        int
	BestStreak           int
	TotalCompleted       int
	CompletionPercentage int
	Status               Status
	StatusMessage        string
}

// Summarize evaluates a habit as of today (YYYY-MM-DD).
func Summarize(h models.Habit, today string) Summary {
	return Summary{
		CurrentStreak:        CurrentStreak(h, today),
		BestStreak:           BestStreak(h),
		TotalCompleted:       TotalCompleted(h),
		CompletionPercentage: CompletionPercentage(h),
		Status:               Classify(h, today),
		StatusMessage:        StatusMessage(h, today),
	}
}

// InRange reports whether day falls inside the habit's inclusive window.
// The canonical format is lexicographically date-ordered, so plain string
// comparison is exact.
func InRange(h models.Habit, day string) bool {
	return day >= h.StartDate && day <= h.EndDate
}

// CompletedOn reports whether day is a member of the habit's completion set.
// A nil or missing set reads as empty.
func CompletedOn(h models.Habit, day string) bool {
	return slices.Contains(h.CompletionDates, day)
}

// CurrentStreak counts consecutive completed days walking backward from
// today. The walk stops at the first unmarked day or at the window boundary:
// days outside [StartDate, EndDate] never count, and a missed or out-of-range
// today means zero. There is no grace day.
func CurrentStreak(h models.Habit, today string) int {
	streak := 0
	for day := today; InRange(h, day); day = dateutil.AddDays(day, -1) {
		if !CompletedOn(h, day) {
			break
		}
		streak++
	}
	return streak
}

// BestStreak returns the length of the longest run of consecutive completed
// days inside the habit window, 0 when nothing in-range is completed.
func BestStreak(h models.Habit) int {
	days := inRangeDays(h)
	if len(days) == 0 {
		return 0
	}

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if dateutil.DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return best
}

// TotalCompleted counts the distinct completion days inside the habit window.
func TotalCompleted(h models.Habit) int {
	return len(inRangeDays(h))
}

// CompletionPercentage returns the share of window days completed, rounded
// and clamped to [0, 100] so over-completion from migrated or duplicate data
// never displays above 100%.
func CompletionPercentage(h models.Habit) int {
	span := dateutil.DaysBetween(h.StartDate, h.EndDate) + 1
	if span <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(TotalCompleted(h)) / float64(span)))
	return min(pct, 100)
}

// DaysToDisplay returns the full inclusive day sequence from StartDate to
// EndDate, ascending.
func DaysToDisplay(h models.Habit) []string {
	span := dateutil.DaysBetween(h.StartDate, h.EndDate) + 1
	if span <= 0 {
		return nil
	}
	days := make([]string, 0, span)
	for i := 0; i < span; i++ {
		days = append(days, dateutil.AddDays(h.StartDate, i))
	}
	return days
}

// inRangeDays filters the completion set to the habit window, sorted and
// deduplicated. Records normally arrive normalized from storage, but the
// engine tolerates raw ones.
func inRangeDays(h models.Habit) []string {
	days := make([]string, 0, len(h.CompletionDates))
	for _, d := range h.CompletionDates {
		if InRange(h, d) {
			days = append(days, d)
		}
	}
	slices.Sort(days)
	return slices.Compact(days)
}
