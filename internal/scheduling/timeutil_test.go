package scheduling

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateTime_Formats(t *testing.T) {
	want := time.Date(2026, 6, 10, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		time string
	}{
		{"24-hour", "14:30"},
		{"12-hour", "2:30 PM"},
		{"12-hour zero-padded", "02:30 PM"},
		{"lowercase meridiem", "2:30 pm"},
		{"surrounding whitespace", "  2:30 PM "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDateTime("2026-06-10", tc.time)
			if err != nil {
				t.Fatalf("ParseDateTime(%q) returned error: %v", tc.time, err)
			}
			if !got.Equal(want) {
				t.Fatalf("ParseDateTime(%q) = %s, want %s", tc.time, got, want)
			}
		})
	}
}

func TestParseDateTime_Morning(t *testing.T) {
	got, err := ParseDateTime("2026-06-10", "9:00 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 9 || got.Minute() != 0 {
		t.Fatalf("expected 09:00, got %02d:%02d", got.Hour(), got.Minute())
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	cases := []struct {
		name string
		date string
		time string
	}{
		{"bad date", "06/10/2026", "14:30"},
		{"bad time", "2026-06-10", "half past two"},
		{"empty time", "2026-06-10", ""},
		{"out of range hour", "2026-06-10", "25:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDateTime(tc.date, tc.time)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("expected ErrInvalidFormat, got %v", err)
			}
		})
	}
}

func TestFormatTime12h(t *testing.T) {
	at := time.Date(2026, 6, 10, 14, 30, 0, 0, time.UTC)
	if got := FormatTime12h(at); got != "2:30 PM" {
		t.Fatalf("FormatTime12h = %q, want %q", got, "2:30 PM")
	}

	morning := time.Date(2026, 6, 10, 9, 5, 0, 0, time.UTC)
	if got := FormatTime12h(morning); got != "9:05 AM" {
		t.Fatalf("FormatTime12h = %q, want %q", got, "9:05 AM")
	}
}

func TestFormatDate(t *testing.T) {
	at := time.Date(2026, 6, 10, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(at); got != "2026-06-10" {
		t.Fatalf("FormatDate = %q, want %q", got, "2026-06-10")
	}
}
