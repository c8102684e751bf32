package validation

import (
	"errors"
	"fmt"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/dateutil"
)

// ErrInvalidOrder is returned when the end date is not strictly after the
// start date.
var ErrInvalidOrder = errors.New("end date must be after start date")

// DurationExceededError is returned when a habit window is longer than the
// configured maximum. Days is the computed span (end minus start).
type DurationExceededError struct {
	Days int
	Max  int
}

func (e *DurationExceededError) Error() string {
	return fmt.Sprintf("habit duration is %d days, maximum is %d", e.Days, e.Max)
}

// Validator checks candidate habit date ranges.
type Validator struct {
	MaxDays int
}

// New creates a Validator with the default maximum window length.
func New() *Validator {
	return &Validator{MaxDays: constants.MaxHabitDays}
}

// ValidateRange checks a candidate [start, end] pair. Rules are applied in
// order: ordering first, then the maximum span. It has no side effects and
// is safe to call repeatedly.
func (v *Validator) ValidateRange(start, end string) error {
	span := dateutil.DaysBetween(start, end)
	if span < 1 {
		return ErrInvalidOrder
	}
	if span > v.MaxDays {
		return &DurationExceededError{Days: span, Max: v.MaxDays}
	}
	return nil
}
