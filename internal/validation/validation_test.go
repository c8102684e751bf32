package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRange(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{
			name:  "minimum valid span",
			start: "2024-01-01",
			end:   "2024-01-02",
		},
		{
			name:  "typical window",
			start: "2024-01-01",
			end:   "2024-01-21",
		},
		{
			name:  "maximum allowed span",
			start: "2024-01-01",
			end:   "2024-03-31",
		},
		{
			name:    "equal dates rejected",
			start:   "2024-01-01",
			end:     "2024-01-01",
			wantErr: ErrInvalidOrder,
		},
		{
			name:    "end before start rejected",
			start:   "2024-01-10",
			end:     "2024-01-01",
			wantErr: ErrInvalidOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRange(tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRange(%s, %s) = %v, want %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRangeDurationExceeded(t *testing.T) {
	v := New()

	err := v.ValidateRange("2024-01-01", "2024-06-01")
	if err == nil {
		t.Fatal("expected an error for a 152-day window")
	}

	var durErr *DurationExceededError
	if !errors.As(err, &durErr) {
		t.Fatalf("expected DurationExceededError, got %T: %v", err, err)
	}
	if durErr.Days != 152 {
		t.Errorf("Days = %d, want 152", durErr.Days)
	}
	if !strings.Contains(err.Error(), "152") {
		t.Errorf("error message %q does not report the computed span", err.Error())
	}
}

func TestValidateRangeOrderCheckedFirst(t *testing.T) {
	v := New()

	// A reversed range that would also exceed the maximum must fail on
	// ordering, not on duration.
	if err := v.ValidateRange("2024-06-01", "2024-01-01"); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("ValidateRange = %v, want ErrInvalidOrder", err)
	}
}

func TestValidateRangeCustomMax(t *testing.T) {
	v := &Validator{MaxDays: 7}

	if err := v.ValidateRange("2024-01-01", "2024-01-08"); err != nil {
		t.Errorf("7-day span with MaxDays=7 should pass, got %v", err)
	}

	var durErr *DurationExceededError
	err := v.ValidateRange("2024-01-01", "2024-01-09")
	if !errors.As(err, &durErr) {
		t.Fatalf("expected DurationExceededError, got %v", err)
	}
	if durErr.Days != 8 || durErr.Max != 7 {
		t.Errorf("got Days=%d Max=%d, want Days=8 Max=7", durErr.Days, durErr.Max)
	}
}

func TestValidateRangeNoSideEffects(t *testing.T) {
	v := New()
	for i := 0; i < 3; i++ {
		if err := v.ValidateRange("2024-01-01", "2024-01-10"); err != nil {
			t.Fatalf("call %d: unexpected error %v", i, err)
		}
	}
}
