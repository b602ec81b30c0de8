package scheduling

import (
	"errors"
	"strings"
	"time"

	"clinic-ops-backend/internal/domain/entity"
)

var (
	// ErrUnknownStatus is returned when a status string is not one of the
	// six appointment statuses
	ErrUnknownStatus = errors.New("unknown appointment status")

	// ErrInvalidTransition is returned when an appointment in a terminal
	// state is cancelled again
	ErrInvalidTransition = errors.New("appointment cannot be cancelled in its current status")
)

// ParseStatus parses a request string into a stored appointment status.
// Status updates are fail-closed: an unrecognized value is an error, never
// a silent default.
func ParseStatus(s string) (entity.AppointmentStatus, error) {
	status := entity.AppointmentStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case entity.AppointmentStatusScheduled,
		entity.AppointmentStatusConfirmed,
		entity.AppointmentStatusInProgress,
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled,
		entity.AppointmentStatusNoShow:
		return status, nil
	default:
		return "", ErrUnknownStatus
	}
}

// CanCancel reports whether an appointment in the given status may still be
// cancelled. Completed and already-cancelled appointments are terminal; a
// second cancel fails rather than silently succeeding.
func CanCancel(status entity.AppointmentStatus) error {
	if status == entity.AppointmentStatusCompleted || status == entity.AppointmentStatusCancelled {
		return ErrInvalidTransition
	}
	return nil
}

// Viewer identifies the role an appointment view is rendered for
type Viewer int

const (
	ViewerPatient Viewer = iota
	ViewerDoctor
	ViewerReceptionist
)

// DisplayStatus derives the human-facing status label from the stored
// status, the appointment start and the current time. It never mutates the
// stored status: a SCHEDULED appointment whose start has passed displays as
// "completed" but stays SCHEDULED in the store.
func DisplayStatus(status entity.AppointmentStatus, startsAt, now time.Time, viewer Viewer) string {
	switch status {
	case entity.AppointmentStatusCompleted:
		return "completed"
	case entity.AppointmentStatusInProgress:
		return "in-progress"
	case entity.AppointmentStatusCancelled, entity.AppointmentStatusNoShow:
		return "cancelled"
	case entity.AppointmentStatusConfirmed:
		if startsAt.Before(now) {
			return "completed"
		}
		if viewer == ViewerPatient {
			return "confirmed"
		}
		return "upcoming"
	default: // SCHEDULED
		if startsAt.Before(now) {
			return "completed"
		}
		if viewer == ViewerDoctor {
			return "upcoming"
		}
		return "pending"
	}
}
