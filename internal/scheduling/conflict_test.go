package scheduling

import (
	"testing"
	"time"

	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func appointmentAt(start time.Time, duration int, status entity.AppointmentStatus) entity.Appointment {
	return entity.Appointment{
		ID:              uuid.New(),
		StartsAt:        start,
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestBookingConflictWindow(t *testing.T) {
	start := time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC)
	from, to := BookingConflictWindow(start)

	if !from.Equal(start.Add(-30 * time.Minute)) {
		t.Fatalf("window start = %s, want 09:30", from.Format("15:04"))
	}
	if !to.Equal(start.Add(30 * time.Minute)) {
		t.Fatalf("window end = %s, want 10:30", to.Format("15:04"))
	}
}

func TestFindConflict_BookingWindow(t *testing.T) {
	requested := time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC)
	from, to := BookingConflictWindow(requested)

	cases := []struct {
		name     string
		existing time.Time
		conflict bool
	}{
		{"29 minutes before", requested.Add(-29 * time.Minute), true},
		{"exactly 30 minutes before", requested.Add(-30 * time.Minute), true},
		{"29 minutes after", requested.Add(29 * time.Minute), true},
		{"exactly 30 minutes after", requested.Add(30 * time.Minute), true},
		{"31 minutes after", requested.Add(31 * time.Minute), false},
		{"same minute", requested, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			existing := []entity.Appointment{
				appointmentAt(tc.existing, 20, entity.AppointmentStatusScheduled),
			}
			got := FindConflict(existing, from, to, uuid.Nil)
			if tc.conflict && got == nil {
				t.Fatal("expected a conflict")
			}
			if !tc.conflict && got != nil {
				t.Fatalf("expected no conflict, got appointment at %s", got.StartsAt.Format("15:04"))
			}
		})
	}
}

func TestFindConflict_IgnoresInactive(t *testing.T) {
	requested := time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC)
	from, to := BookingConflictWindow(requested)

	existing := []entity.Appointment{
		appointmentAt(requested, 20, entity.AppointmentStatusCancelled),
		appointmentAt(requested.Add(10*time.Minute), 20, entity.AppointmentStatusNoShow),
	}

	if got := FindConflict(existing, from, to, uuid.Nil); got != nil {
		t.Fatalf("cancelled and no-show slots must not conflict, got %s", got.Status)
	}
}

func TestFindConflict_ExcludesSelf(t *testing.T) {
	requested := time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC)
	from, to := SlotConflictWindow(requested, 20)

	self := appointmentAt(requested, 20, entity.AppointmentStatusScheduled)

	if got := FindConflict([]entity.Appointment{self}, from, to, self.ID); got != nil {
		t.Fatal("the appointment being moved must not conflict with itself")
	}
	if got := FindConflict([]entity.Appointment{self}, from, to, uuid.Nil); got == nil {
		t.Fatal("expected conflict when the slot is held by another appointment")
	}
}

func TestSlotConflictWindow_Buffer(t *testing.T) {
	start := time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC)
	from, to := SlotConflictWindow(start, 30)

	if !from.Equal(start.Add(-5 * time.Minute)) {
		t.Fatalf("window start = %s, want 09:55", from.Format("15:04"))
	}
	if !to.Equal(start.Add(35 * time.Minute)) {
		t.Fatalf("window end = %s, want 10:35", to.Format("15:04"))
	}
}

func TestFindConflict_SlotWindowBackToBack(t *testing.T) {
	// A 10:00-10:30 slot with the 5-minute buffer collides with a slot
	// ending at 10:00 sharp; a slot ending by 09:55 is fine.
	start := time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC)
	from, to := SlotConflictWindow(start, 30)

	adjacent := appointmentAt(start.Add(-20*time.Minute), 20, entity.AppointmentStatusConfirmed)
	if got := FindConflict([]entity.Appointment{adjacent}, from, to, uuid.Nil); got == nil {
		t.Fatal("expected back-to-back slot to conflict within the buffer")
	}

	clear := appointmentAt(start.Add(-30*time.Minute), 20, entity.AppointmentStatusConfirmed)
	if got := FindConflict([]entity.Appointment{clear}, from, to, uuid.Nil); got != nil {
		t.Fatal("expected slot ending 09:50 to be clear of the 09:55 window")
	}
}

func TestEffectiveDuration(t *testing.T) {
	if got := EffectiveDuration(0); got != DefaultDurationMinutes {
		t.Fatalf("EffectiveDuration(0) = %d, want %d", got, DefaultDurationMinutes)
	}
	if got := EffectiveDuration(-5); got != DefaultDurationMinutes {
		t.Fatalf("EffectiveDuration(-5) = %d, want %d", got, DefaultDurationMinutes)
	}
	if got := EffectiveDuration(45); got != 45 {
		t.Fatalf("EffectiveDuration(45) = %d, want 45", got)
	}
}
