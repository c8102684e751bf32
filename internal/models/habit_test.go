package models

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		habit Habit
		want  []string
	}{
		{
			name:  "nil set becomes empty",
			habit: Habit{Name: "read"},
			want:  []string{},
		},
		{
			name: "sorted and deduplicated",
			habit: Habit{
				CompletionDates: []string{"2024-01-03", "2024-01-01", "2024-01-03", "2024-01-02"},
			},
			want: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		},
		{
			name: "malformed days dropped",
			habit: Habit{
				CompletionDates: []string{"2024-01-01", "yesterday", "", "2024-02-30"},
			},
			want: []string{"2024-01-01"},
		},
		{
			name: "whitespace trimmed",
			habit: Habit{
				CompletionDates: []string{" 2024-01-01", "2024-01-02 "},
			},
			want: []string{"2024-01-01", "2024-01-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.habit.Normalize()
			if !reflect.DeepEqual(tt.habit.CompletionDates, tt.want) {
				t.Errorf("Normalize() -> %v, want %v", tt.habit.CompletionDates, tt.want)
			}
		})
	}
}

func TestNormalizeTrimsName(t *testing.T) {
	h := Habit{Name: "  read  "}
	h.Normalize()
	if h.Name != "read" {
		t.Errorf("Name = %q, want %q", h.Name, "read")
	}
}

func TestToggleCompletion(t *testing.T) {
	h := Habit{CompletionDates: []string{"2024-01-01", "2024-01-03"}}

	h.ToggleCompletion("2024-01-02")
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if !reflect.DeepEqual(h.CompletionDates, want) {
		t.Errorf("after add: %v, want %v", h.CompletionDates, want)
	}
	if !h.Completed("2024-01-02") {
		t.Error("Completed() = false after toggle on")
	}

	h.ToggleCompletion("2024-01-02")
	want = []string{"2024-01-01", "2024-01-03"}
	if !reflect.DeepEqual(h.CompletionDates, want) {
		t.Errorf("after remove: %v, want %v", h.CompletionDates, want)
	}
	if h.Completed("2024-01-02") {
		t.Error("Completed() = true after toggle off")
	}
}

func TestToggleCompletionIdempotentPair(t *testing.T) {
	original := []string{"2024-01-01", "2024-01-05"}
	h := Habit{CompletionDates: append([]string{}, original...)}

	h.ToggleCompletion("2024-01-03")
	h.ToggleCompletion("2024-01-03")

	if !reflect.DeepEqual(h.CompletionDates, original) {
		t.Errorf("double toggle changed the set: %v, want %v", h.CompletionDates, original)
	}
}
