package scheduling

import (
	"testing"
	"time"

	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Walks a clinic day the way the booking path does: working hours first,
// then the conflict window against the doctor's existing slots.
func TestBookingScenario_ClinicDay(t *testing.T) {
	day := "2026-06-10"
	booked := make([]entity.Appointment, 0, 4)

	tryBook := func(timeOfDay string) error {
		startsAt, err := ParseDateTime(day, timeOfDay)
		if err != nil {
			return err
		}
		if err := CheckWorkingHours(startsAt, "", ""); err != nil {
			return err
		}
		from, to := BookingConflictWindow(startsAt)
		if conflict := FindConflict(booked, from, to, uuid.Nil); conflict != nil {
			return &ConflictError{At: conflict.StartsAt}
		}
		booked = append(booked, entity.Appointment{
			ID:              uuid.New(),
			StartsAt:        startsAt,
			DurationMinutes: DefaultDurationMinutes,
			Status:          entity.AppointmentStatusScheduled,
		})
		return nil
	}

	// Before opening.
	if err := tryBook("8:59 AM"); err == nil {
		t.Fatal("expected 8:59 AM to be outside working hours")
	}

	// First slot of the day.
	if err := tryBook("9:00 AM"); err != nil {
		t.Fatalf("expected 9:00 AM to book, got %v", err)
	}

	// Within 30 minutes of the 9:00 booking.
	if err := tryBook("9:25 AM"); err == nil {
		t.Fatal("expected 9:25 AM to conflict with the 9:00 AM booking")
	}

	// Clear of the window.
	if err := tryBook("10:00 AM"); err != nil {
		t.Fatalf("expected 10:00 AM to book, got %v", err)
	}

	// Last inclusive slot.
	if err := tryBook("5:00 PM"); err != nil {
		t.Fatalf("expected 5:00 PM to book, got %v", err)
	}
	if err := tryBook("5:01 PM"); err == nil {
		t.Fatal("expected 5:01 PM to be outside working hours")
	}

	if len(booked) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(booked))
	}
}

// A cancelled slot frees its window for rebooking.
func TestBookingScenario_CancelFreesSlot(t *testing.T) {
	startsAt, err := ParseDateTime("2026-06-10", "11:00 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	existing := entity.Appointment{
		ID:              uuid.New(),
		StartsAt:        startsAt,
		DurationMinutes: DefaultDurationMinutes,
		Status:          entity.AppointmentStatusScheduled,
	}

	from, to := BookingConflictWindow(startsAt)
	if FindConflict([]entity.Appointment{existing}, from, to, uuid.Nil) == nil {
		t.Fatal("expected the held slot to conflict")
	}

	existing.Status = entity.AppointmentStatusCancelled
	if FindConflict([]entity.Appointment{existing}, from, to, uuid.Nil) != nil {
		t.Fatal("expected the cancelled slot to be rebookable")
	}
}

func TestAppointmentEndsAt(t *testing.T) {
	startsAt := time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC)
	ap := entity.Appointment{StartsAt: startsAt, DurationMinutes: 45}
	if !ap.EndsAt().Equal(startsAt.Add(45 * time.Minute)) {
		t.Fatalf("EndsAt = %s, want 10:45", ap.EndsAt().Format("15:04"))
	}
}
