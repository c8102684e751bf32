package errors

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("habit not found"),
			expected: "Error: habit not found",
		},
		{
			name:     "wrapped error",
			err:      errors.New("failed to read storage: permission denied"),
			expected: "Error: failed to read storage: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	result := Formatf("failed to load %s", "habitgrid.json")
	expected := "Error: failed to load habitgrid.json"
	if result != expected {
		t.Errorf("Formatf() = %q, want %q", result, expected)
	}
}
