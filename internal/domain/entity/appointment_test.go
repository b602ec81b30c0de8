package entity

import (
	"strings"
	"testing"
	"time"
)

func TestAppendNote_Journal(t *testing.T) {
	ap := Appointment{Notes: "Patient prefers mornings"}
	at := time.Date(2026, 6, 10, 14, 30, 0, 0, time.UTC)

	ap.AppendNote(at, "Rescheduled", "moved from 2026-06-10 10:00 AM to 2026-06-12 2:30 PM")

	lines := strings.Split(ap.Notes, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 note lines, got %d", len(lines))
	}
	if lines[0] != "Patient prefers mornings" {
		t.Fatalf("existing note rewritten: %q", lines[0])
	}
	want := "[Rescheduled 2026-06-10 14:30] moved from 2026-06-10 10:00 AM to 2026-06-12 2:30 PM"
	if lines[1] != want {
		t.Fatalf("appended line = %q, want %q", lines[1], want)
	}
}

func TestAppendNote_EmptyJournal(t *testing.T) {
	var ap Appointment
	at := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)

	ap.AppendNote(at, "Cancelled", "patient request")

	if ap.Notes != "[Cancelled 2026-06-10 09:00] patient request" {
		t.Fatalf("unexpected notes: %q", ap.Notes)
	}
}

func TestIsActive(t *testing.T) {
	active := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusInProgress,
		AppointmentStatusCompleted,
	}
	for _, s := range active {
		if !(&Appointment{Status: s}).IsActive() {
			t.Fatalf("expected %s to be active", s)
		}
	}

	inactive := []AppointmentStatus{
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	}
	for _, s := range inactive {
		if (&Appointment{Status: s}).IsActive() {
			t.Fatalf("expected %s to be inactive", s)
		}
	}
}
