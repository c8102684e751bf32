package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitgrid/internal/logger"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/stats"
	"github.com/julianstephens/habitgrid/internal/storage"
	"github.com/julianstephens/habitgrid/internal/validation"
)

// Tracker is the mutation boundary between the presentation surfaces and the
// store. It validates all writes; the store itself stays dumb.
type Tracker struct {
	store     storage.Provider
	validator *validation.Validator
}

// HabitSummary pairs a habit record with its derived statistics for display.
type HabitSummary struct {
	Habit   models.Habit
	Summary stats.Summary
}

func New(store storage.Provider) *Tracker {
	return &Tracker{
		store:     store,
		validator: validation.New(),
	}
}

// Create validates and persists a new habit with an empty completion set.
func (t *Tracker) Create(name, startDate, endDate string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, fmt.Errorf("habit name must not be empty")
	}

	if _, err := t.store.GetHabitByName(name); err == nil {
		return models.Habit{}, fmt.Errorf("habit with name %q already exists", name)
	}

	if err := t.validator.ValidateRange(startDate, endDate); err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:              uuid.New().String(),
		Name:            name,
		StartDate:       startDate,
		EndDate:         endDate,
		CreatedAt:       time.Now(),
		CompletionDates: []string{},
	}

	if err := t.store.AddHabit(habit); err != nil {
		return models.Habit{}, err
	}

	logger.Info("Created habit", "id", habit.ID, "name", name)
	return habit, nil
}

// Toggle flips membership of day in the habit's completion set and persists
// the result. A missing habit is a silent no-op: the record may already have
// been deleted by an earlier step in the same session.
func (t *Tracker) Toggle(habitID, day string) error {
	habit, err := t.store.GetHabit(habitID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Toggle on missing habit ignored", "id", habitID)
			return nil
		}
		return err
	}

	habit.ToggleCompletion(day)
	return t.store.UpdateHabit(habit)
}

// Delete removes the habit unconditionally. A missing habit is a silent no-op.
func (t *Tracker) Delete(habitID string) error {
	err := t.store.DeleteHabit(habitID)
	if errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Delete on missing habit ignored", "id", habitID)
		return nil
	}
	return err
}

// Get resolves a habit by name.
func (t *Tracker) Get(name string) (models.Habit, error) {
	habit, err := t.store.GetHabitByName(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Habit{}, fmt.Errorf("habit %q not found", name)
		}
		return models.Habit{}, err
	}
	return habit, nil
}

// Summaries returns every habit joined with its statistics as of today.
func (t *Tracker) Summaries(today string) ([]HabitSummary, error) {
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return nil, err
	}

	summaries := make([]HabitSummary, 0, len(habits))
	for _, h := range habits {
		summaries = append(summaries, HabitSummary{
			Habit:   h,
			Summary: stats.Summarize(h, today),
		})
	}
	return summaries, nil
}
