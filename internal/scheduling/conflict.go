package scheduling

import (
	"fmt"
	"time"

	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	// DefaultDurationMinutes is assumed when an appointment has no duration
	DefaultDurationMinutes = 20

	// slotBufferMinutes is the symmetric turnaround margin around a slot.
	// Two back-to-back appointments with zero gap are treated as conflicting.
	slotBufferMinutes = 5

	// bookingWindowMinutes is the conservative margin used on the
	// self-service booking path, where the patient has not chosen a
	// duration yet: any active appointment within this distance of the
	// requested start blocks the booking.
	bookingWindowMinutes = 30
)

// ConflictError reports a slot taken by another active appointment
type ConflictError struct {
	At time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("the selected time slot is not available, another appointment is booked at %s", FormatTime12h(e.At))
}

// EffectiveDuration normalizes an appointment duration, applying the
// 20-minute default when unset
func EffectiveDuration(durationMinutes int) int {
	if durationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return durationMinutes
}

// BookingConflictWindow is the patient self-service policy: a fixed
// +/-30 minute window around the requested start, regardless of duration.
//
// This is deliberately distinct from SlotConflictWindow; the two policies
// are not unified because collapsing them would change observable booking
// behavior.
func BookingConflictWindow(start time.Time) (time.Time, time.Time) {
	return start.Add(-bookingWindowMinutes * time.Minute),
		start.Add(bookingWindowMinutes * time.Minute)
}

// SlotConflictWindow is the duration-aware policy used by reschedule,
// confirm and duration changes: the slot interval padded with a 5-minute
// buffer on each side.
func SlotConflictWindow(start time.Time, durationMinutes int) (time.Time, time.Time) {
	d := time.Duration(EffectiveDuration(durationMinutes)) * time.Minute
	return start.Add(-slotBufferMinutes * time.Minute),
		start.Add(d).Add(slotBufferMinutes * time.Minute)
}

// FindConflict returns the first active appointment whose interval overlaps
// the closed window [from, to], skipping the excluded appointment (the one
// being updated) and any cancelled or no-show booking. Both window ends are
// inclusive: an appointment starting exactly 30 minutes after a requested
// booking still blocks it. Returns nil when the window is free.
func FindConflict(appointments []entity.Appointment, from, to time.Time, exclude uuid.UUID) *entity.Appointment {
	for i := range appointments {
		ap := &appointments[i]
		if ap.ID == exclude {
			continue
		}
		if !ap.IsActive() {
			continue
		}
		apEnd := ap.StartsAt.Add(time.Duration(EffectiveDuration(ap.DurationMinutes)) * time.Minute)
		if !ap.StartsAt.After(to) && apEnd.After(from) {
			return ap
		}
	}
	return nil
}
