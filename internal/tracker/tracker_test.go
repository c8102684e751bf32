package tracker

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitgrid/internal/stats"
	"github.com/julianstephens/habitgrid/internal/storage"
	"github.com/julianstephens/habitgrid/internal/validation"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "habitgrid.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return New(store)
}

func TestCreate(t *testing.T) {
	tr := newTestTracker(t)

	habit, err := tr.Create("read", "2024-01-01", "2024-01-21")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if habit.ID == "" {
		t.Error("Create() assigned no ID")
	}
	if habit.Name != "read" {
		t.Errorf("Name = %q, want %q", habit.Name, "read")
	}
	if len(habit.CompletionDates) != 0 {
		t.Errorf("new habit has completions: %v", habit.CompletionDates)
	}

	// Persisted and resolvable by name.
	if _, err := tr.Get("read"); err != nil {
		t.Errorf("Get() after create failed: %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	tr := newTestTracker(t)

	tests := []struct {
		name      string
		habitName string
		start     string
		end       string
	}{
		{
			name:      "empty name",
			habitName: "   ",
			start:     "2024-01-01",
			end:       "2024-01-21",
		},
		{
			name:      "end equals start",
			habitName: "read",
			start:     "2024-01-01",
			end:       "2024-01-01",
		},
		{
			name:      "window too long",
			habitName: "read",
			start:     "2024-01-01",
			end:       "2024-06-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tr.Create(tt.habitName, tt.start, tt.end); err == nil {
				t.Error("Create() should have failed")
			}
		})
	}

	// Nothing was persisted by the failed attempts.
	summaries, err := tr.Summaries("2024-01-01")
	if err != nil {
		t.Fatalf("Summaries() failed: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("store holds %d habits after failed creates, want 0", len(summaries))
	}
}

func TestCreateRangeErrorTypes(t *testing.T) {
	tr := newTestTracker(t)

	if _, err := tr.Create("a", "2024-01-02", "2024-01-01"); !errors.Is(err, validation.ErrInvalidOrder) {
		t.Errorf("Create() = %v, want ErrInvalidOrder", err)
	}

	var durErr *validation.DurationExceededError
	if _, err := tr.Create("b", "2024-01-01", "2024-06-01"); !errors.As(err, &durErr) {
		t.Errorf("Create() = %v, want DurationExceededError", err)
	} else if durErr.Days != 152 {
		t.Errorf("Days = %d, want 152", durErr.Days)
	}
}

func TestCreateDuplicateName(t *testing.T) {
	tr := newTestTracker(t)

	if _, err := tr.Create("read", "2024-01-01", "2024-01-21"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := tr.Create("read", "2024-02-01", "2024-02-21"); err == nil {
		t.Error("duplicate name should be rejected")
	}
}

func TestToggleIdempotentPair(t *testing.T) {
	tr := newTestTracker(t)

	habit, err := tr.Create("read", "2024-01-01", "2024-01-21")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	before, _ := tr.Get("read")
	beforeSummary := stats.Summarize(before, "2024-01-10")

	if err := tr.Toggle(habit.ID, "2024-01-05"); err != nil {
		t.Fatalf("first Toggle() failed: %v", err)
	}
	mid, _ := tr.Get("read")
	if !mid.Completed("2024-01-05") {
		t.Error("day not completed after first toggle")
	}

	if err := tr.Toggle(habit.ID, "2024-01-05"); err != nil {
		t.Fatalf("second Toggle() failed: %v", err)
	}
	after, _ := tr.Get("read")
	if after.Completed("2024-01-05") {
		t.Error("day still completed after second toggle")
	}

	// Derived statistics are restored too.
	if got := stats.Summarize(after, "2024-01-10"); got != beforeSummary {
		t.Errorf("summary after double toggle = %+v, want %+v", got, beforeSummary)
	}
}

func TestToggleMissingHabitIsNoOp(t *testing.T) {
	tr := newTestTracker(t)

	if err := tr.Toggle("does-not-exist", "2024-01-05"); err != nil {
		t.Errorf("Toggle() on missing habit = %v, want nil", err)
	}
}

func TestDeleteMissingHabitIsNoOp(t *testing.T) {
	tr := newTestTracker(t)

	if err := tr.Delete("does-not-exist"); err != nil {
		t.Errorf("Delete() on missing habit = %v, want nil", err)
	}
}

func TestDelete(t *testing.T) {
	tr := newTestTracker(t)

	habit, err := tr.Create("read", "2024-01-01", "2024-01-21")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := tr.Delete(habit.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := tr.Get("read"); err == nil {
		t.Error("Get() should fail after delete")
	}
	// Deleting again is the documented no-op.
	if err := tr.Delete(habit.ID); err != nil {
		t.Errorf("second Delete() = %v, want nil", err)
	}
}

func TestSummaries(t *testing.T) {
	tr := newTestTracker(t)

	habit, err := tr.Create("read", "2024-01-01", "2024-01-10")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"} {
		if err := tr.Toggle(habit.ID, day); err != nil {
			t.Fatalf("Toggle(%s) failed: %v", day, err)
		}
	}

	summaries, err := tr.Summaries("2024-01-03")
	if err != nil {
		t.Fatalf("Summaries() failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1", len(summaries))
	}

	s := summaries[0].Summary
	if s.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", s.CurrentStreak)
	}
	if s.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", s.BestStreak)
	}
	if s.TotalCompleted != 4 {
		t.Errorf("TotalCompleted = %d, want 4", s.TotalCompleted)
	}
	if s.CompletionPercentage != 40 {
		t.Errorf("CompletionPercentage = %d, want 40", s.CompletionPercentage)
	}
	if s.Status != stats.StatusActive {
		t.Errorf("Status = %s, want %s", s.Status, stats.StatusActive)
	}
}
