package scheduling

import (
	"errors"
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestCheckWorkingHours_Defaults(t *testing.T) {
	cases := []struct {
		name    string
		at      time.Time
		allowed bool
	}{
		{"one minute before opening", at(8, 59), false},
		{"opening time", at(9, 0), true},
		{"mid-day", at(12, 30), true},
		{"closing time", at(17, 0), true},
		{"one minute after closing", at(17, 1), false},
		{"late evening", at(22, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckWorkingHours(tc.at, "", "")
			if tc.allowed && err != nil {
				t.Fatalf("expected %s to be allowed, got %v", tc.at.Format("15:04"), err)
			}
			if !tc.allowed && err == nil {
				t.Fatalf("expected %s to be rejected", tc.at.Format("15:04"))
			}
		})
	}
}

func TestCheckWorkingHours_CustomHours(t *testing.T) {
	if err := CheckWorkingHours(at(7, 30), "07:00", "15:00"); err != nil {
		t.Fatalf("expected 07:30 within 07:00-15:00, got %v", err)
	}
	if err := CheckWorkingHours(at(16, 0), "07:00", "15:00"); err == nil {
		t.Fatal("expected 16:00 outside 07:00-15:00")
	}
}

func TestCheckWorkingHours_ErrorMessage(t *testing.T) {
	err := CheckWorkingHours(at(8, 0), "", "")
	var hoursErr *WorkingHoursError
	if !errors.As(err, &hoursErr) {
		t.Fatalf("expected WorkingHoursError, got %T", err)
	}
	if hoursErr.Start != "9:00 AM" || hoursErr.End != "5:00 PM" {
		t.Fatalf("expected bounds 9:00 AM-5:00 PM, got %s-%s", hoursErr.Start, hoursErr.End)
	}
}

func TestCheckWorkingHours_MalformedConfigFailsOpen(t *testing.T) {
	// A broken doctor profile must not deny service.
	if err := CheckWorkingHours(at(3, 0), "nine-ish", "17:00"); err != nil {
		t.Fatalf("expected malformed start to fail open, got %v", err)
	}
	if err := CheckWorkingHours(at(3, 0), "09:00", "late"); err != nil {
		t.Fatalf("expected malformed end to fail open, got %v", err)
	}
}
