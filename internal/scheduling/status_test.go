package scheduling

import (
	"errors"
	"testing"
	"time"

	"clinic-ops-backend/internal/domain/entity"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want entity.AppointmentStatus
	}{
		{"SCHEDULED", entity.AppointmentStatusScheduled},
		{"confirmed", entity.AppointmentStatusConfirmed},
		{" in_progress ", entity.AppointmentStatusInProgress},
		{"Completed", entity.AppointmentStatusCompleted},
		{"CANCELLED", entity.AppointmentStatusCancelled},
		{"no_show", entity.AppointmentStatusNoShow},
	}

	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		if err != nil {
			t.Fatalf("ParseStatus(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseStatus(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	for _, in := range []string{"", "DONE", "scheduled-ish"} {
		if _, err := ParseStatus(in); !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("ParseStatus(%q): expected ErrUnknownStatus, got %v", in, err)
		}
	}
}

func TestCanCancel(t *testing.T) {
	cancellable := []entity.AppointmentStatus{
		entity.AppointmentStatusScheduled,
		entity.AppointmentStatusConfirmed,
		entity.AppointmentStatusInProgress,
		entity.AppointmentStatusNoShow,
	}
	for _, s := range cancellable {
		if err := CanCancel(s); err != nil {
			t.Fatalf("expected %s to be cancellable, got %v", s, err)
		}
	}

	terminal := []entity.AppointmentStatus{
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled,
	}
	for _, s := range terminal {
		if err := CanCancel(s); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected %s to reject cancellation, got %v", s, err)
		}
	}
}

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(2 * time.Hour)
	past := now.Add(-2 * time.Hour)

	cases := []struct {
		name     string
		status   entity.AppointmentStatus
		startsAt time.Time
		viewer   Viewer
		want     string
	}{
		{"scheduled future patient", entity.AppointmentStatusScheduled, future, ViewerPatient, "pending"},
		{"scheduled future doctor", entity.AppointmentStatusScheduled, future, ViewerDoctor, "upcoming"},
		{"scheduled future receptionist", entity.AppointmentStatusScheduled, future, ViewerReceptionist, "pending"},
		{"confirmed future patient", entity.AppointmentStatusConfirmed, future, ViewerPatient, "confirmed"},
		{"confirmed future doctor", entity.AppointmentStatusConfirmed, future, ViewerDoctor, "upcoming"},
		{"scheduled past patient", entity.AppointmentStatusScheduled, past, ViewerPatient, "completed"},
		{"confirmed past doctor", entity.AppointmentStatusConfirmed, past, ViewerDoctor, "completed"},
		{"in progress", entity.AppointmentStatusInProgress, past, ViewerDoctor, "in-progress"},
		{"completed", entity.AppointmentStatusCompleted, past, ViewerPatient, "completed"},
		{"cancelled", entity.AppointmentStatusCancelled, future, ViewerPatient, "cancelled"},
		{"no-show displays cancelled", entity.AppointmentStatusNoShow, past, ViewerReceptionist, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DisplayStatus(tc.status, tc.startsAt, now, tc.viewer)
			if got != tc.want {
				t.Fatalf("DisplayStatus = %q, want %q", got, tc.want)
			}
		})
	}
}
