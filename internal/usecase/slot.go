package usecase

import (
	"time"

	"clinic-ops-backend/internal/domain/repository"
	"clinic-ops-backend/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// checkSlotAvailable validates a duration-aware slot against the doctor's
// working hours and existing bookings. It locks the doctor row, so it must
// run inside the caller's transaction. excludeID skips the appointment
// being moved or confirmed.
func checkSlotAvailable(
	tx *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorID uuid.UUID,
	startsAt time.Time,
	durationMinutes int,
	excludeID uuid.UUID,
) error {
	doctor, err := doctorRepo.FindByUserIDForUpdate(tx, doctorID)
	if err != nil {
		log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if err := scheduling.CheckWorkingHours(startsAt, doctor.WorkStartTime, doctor.WorkEndTime); err != nil {
		return err
	}

	from, to := scheduling.SlotConflictWindow(startsAt, durationMinutes)

	// Fetch the whole day so appointments starting before the window but
	// running into it are still considered.
	dayStart := time.Date(startsAt.Year(), startsAt.Month(), startsAt.Day(), 0, 0, 0, 0, startsAt.Location())
	existing, err := appointmentRepo.FindByDoctorInWindow(tx, doctorID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		log.Warnf("Failed to load doctor appointments: %+v", err)
		return err
	}

	if conflict := scheduling.FindConflict(existing, from, to, excludeID); conflict != nil {
		return &scheduling.ConflictError{At: conflict.StartsAt}
	}

	return nil
}
