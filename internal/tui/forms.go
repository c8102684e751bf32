package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/validation"
)

// NewHabitForm creates the add-habit form. The date range is validated
// inline so ordering and maximum-length failures surface before submit.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	validator := validation.New()

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name must not be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start date").
				Description("YYYY-MM-DD").
				Value(&fm.Start).
				Validate(func(s string) error {
					if !dateutil.Valid(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("End date").
				Description("YYYY-MM-DD").
				Value(&fm.End).
				Validate(func(s string) error {
					if !dateutil.Valid(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return validator.ValidateRange(fm.Start, s)
				}),
		),
	)
}

// NewConfirmDeleteForm creates the delete confirmation dialog.
func NewConfirmDeleteForm(name string, cm *ConfirmModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete habit %q?", name)).
				Description("Its completion history is removed irrecoverably.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&cm.Confirmed),
		),
	)
}
