package storage

import (
	"errors"

	"github.com/julianstephens/habitgrid/internal/models"
)

// ErrNotFound is returned by lookups when no habit matches. Callers that
// treat a missing record as a no-op check for it with errors.Is.
var ErrNotFound = errors.New("habit not found")

// Provider is the persistence boundary. Implementations own the canonical
// habit list; everything above it works on value copies.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error

	// Utils
	GetConfigPath() string
}
