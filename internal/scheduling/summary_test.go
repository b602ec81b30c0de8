package scheduling

import (
	"testing"

	"clinic-ops-backend/internal/domain/entity"
)

func TestSummarize(t *testing.T) {
	appointments := []entity.Appointment{
		{Status: entity.AppointmentStatusScheduled},
		{Status: entity.AppointmentStatusConfirmed},
		{Status: entity.AppointmentStatusInProgress},
		{Status: entity.AppointmentStatusCompleted},
		{Status: entity.AppointmentStatusCancelled},
		{Status: entity.AppointmentStatusNoShow},
	}

	s := Summarize(appointments)

	if s.Total != 6 {
		t.Fatalf("Total = %d, want 6", s.Total)
	}
	if s.Upcoming != 2 {
		t.Fatalf("Upcoming = %d, want 2 (scheduled + confirmed)", s.Upcoming)
	}
	if s.InProgress != 1 {
		t.Fatalf("InProgress = %d, want 1", s.InProgress)
	}
	if s.Completed != 1 {
		t.Fatalf("Completed = %d, want 1", s.Completed)
	}
	if s.Cancelled != 2 {
		t.Fatalf("Cancelled = %d, want 2 (cancelled + no-show)", s.Cancelled)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.Upcoming != 0 || s.Completed != 0 || s.InProgress != 0 || s.Cancelled != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}
