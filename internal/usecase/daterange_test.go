package usecase

import (
	"errors"
	"testing"
	"time"

	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/scheduling"

	"github.com/google/uuid"
)

func TestParseClosedDateRange(t *testing.T) {
	from, to, err := parseClosedDateRange("2026-06-01", "2026-06-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !from.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %s, want 2026-06-01 midnight", from)
	}
	// The upper bound is the midnight after the end date, so appointments
	// anywhere on 2026-06-07 fall inside [from, to).
	if !to.Equal(time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %s, want 2026-06-08 midnight", to)
	}

	lastSlot := time.Date(2026, 6, 7, 23, 30, 0, 0, time.UTC)
	if !lastSlot.Before(to) || lastSlot.Before(from) {
		t.Errorf("an appointment at %s must be inside the range", lastSlot)
	}
	dayAfter := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)
	if dayAfter.Before(to) {
		t.Errorf("midnight of the day after the range end must be excluded")
	}
}

func TestParseClosedDateRange_SingleDay(t *testing.T) {
	from, to, err := parseClosedDateRange("2026-06-07", "2026-06-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if to.Sub(from) != 24*time.Hour {
		t.Fatalf("single-day range spans %s, want 24h", to.Sub(from))
	}
}

func TestParseClosedDateRange_InvalidDates(t *testing.T) {
	if _, _, err := parseClosedDateRange("07/06/2026", "2026-06-07"); !errors.Is(err, scheduling.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for bad from date, got %v", err)
	}
	if _, _, err := parseClosedDateRange("2026-06-01", ""); !errors.Is(err, scheduling.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for empty to date, got %v", err)
	}
}

func TestRescheduleNotificationPayload(t *testing.T) {
	oldStart := time.Date(2026, 6, 10, 14, 30, 0, 0, time.UTC)
	appointment := &entity.Appointment{
		ID:       uuid.New(),
		StartsAt: time.Date(2026, 6, 12, 9, 0, 0, 0, time.UTC),
		Doctor: entity.Doctor{
			User: entity.User{FirstName: "Omar", LastName: "Haddad"},
		},
	}

	payload := rescheduleNotificationPayload(appointment, oldStart)

	if payload["previous_date"] != "2026-06-10" || payload["previous_time"] != "2:30 PM" {
		t.Errorf("old slot = %v %v, want 2026-06-10 2:30 PM", payload["previous_date"], payload["previous_time"])
	}
	if payload["date"] != "2026-06-12" || payload["time"] != "9:00 AM" {
		t.Errorf("new slot = %v %v, want 2026-06-12 9:00 AM", payload["date"], payload["time"])
	}
	if payload["doctor_name"] != "Omar Haddad" {
		t.Errorf("doctor_name = %v", payload["doctor_name"])
	}
	if payload["appointment_id"] != appointment.ID.String() {
		t.Errorf("appointment_id = %v", payload["appointment_id"])
	}
}
