package usecase

import (
	"context"
	"errors"

	"clinic-ops-backend/internal/converter"
	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/domain/repository"
	"clinic-ops-backend/internal/scheduling"
	"clinic-ops-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrNotAppointmentOwner = errors.New("appointment does not belong to this user")
	ErrDoctorUnavailable   = errors.New("doctor is not currently accepting appointments")
	ErrPastDateTime        = errors.New("appointment time must be in the future")
)

// upcomingWindowMonths bounds the patient "upcoming" view
const upcomingWindowMonths = 3

type PatientAppointmentUsecase interface {
	BookAppointment(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetUpcomingAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, patientID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, patientID, appointmentID uuid.UUID, reason string) (*dto.AppointmentResponse, error)
}

type patientAppointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	clock           scheduling.Clock
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	auditService    service.AuditService
	notifier        service.NotificationService
}

func NewPatientAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock scheduling.Clock,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	notifier service.NotificationService,
) PatientAppointmentUsecase {
	return &patientAppointmentUsecase{
		db:              db,
		log:             log,
		clock:           clock,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
		notifier:        notifier,
	}
}

func (u *patientAppointmentUsecase) BookAppointment(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	startsAt, err := scheduling.ParseDateTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		StartsAt:        startsAt,
		DurationMinutes: scheduling.DefaultDurationMinutes,
		Status:          entity.AppointmentStatusScheduled,
		Type:            scheduling.ParseAppointmentType(req.Type),
		Reason:          req.Reason,
		Notes:           req.Notes,
	}

	err = runInTxWithRetry(u.log, func() error {
		tx := u.db.WithContext(ctx).Begin()
		defer tx.Rollback()

		patient, err := u.patientRepo.FindByUserID(tx, patientID)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		// Lock the doctor row first; every slot check for this doctor
		// serializes behind it.
		doctor, err := u.doctorRepo.FindByUserIDForUpdate(tx, req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return err
		}
		if doctor == nil {
			return ErrDoctorNotFound
		}
		if !doctor.IsAvailable {
			return ErrDoctorUnavailable
		}

		if startsAt.Before(u.clock.Now()) {
			return ErrPastDateTime
		}

		if err := scheduling.CheckWorkingHours(startsAt, doctor.WorkStartTime, doctor.WorkEndTime); err != nil {
			return err
		}

		from, to := scheduling.BookingConflictWindow(startsAt)
		existing, err := u.appointmentRepo.FindByDoctorInWindow(tx, req.DoctorID, from, to)
		if err != nil {
			u.log.Warnf("Failed to load doctor appointments: %+v", err)
			return err
		}
		if conflict := scheduling.FindConflict(existing, from, to, uuid.Nil); conflict != nil {
			return &scheduling.ConflictError{At: conflict.StartsAt}
		}

		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			if isForeignKeyError(err, "doctor") {
				return ErrDoctorNotFound
			}
			u.log.Warnf("Failed to create appointment: %+v", err)
			return err
		}

		u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), appointment)

		return tx.Commit().Error
	})
	if err != nil {
		return nil, err
	}

	created, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return nil, err
	}
	if created == nil {
		return nil, ErrAppointmentNotFound
	}

	u.notifier.Send(ctx, created.Patient.User.Email, service.NotificationConfirmation, map[string]interface{}{
		"appointment_id": created.ID.String(),
		"doctor_name":    created.Doctor.User.FullName(),
		"date":           scheduling.FormatDate(created.StartsAt),
		"time":           scheduling.FormatTime12h(created.StartsAt),
	})

	return converter.AppointmentToResponse(created, scheduling.ViewerPatient, u.clock.Now()), nil
}

func (u *patientAppointmentUsecase) GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments, scheduling.ViewerPatient, u.clock.Now()),
		Total:        len(appointments),
	}, nil
}

func (u *patientAppointmentUsecase) GetUpcomingAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	now := u.clock.Now()
	appointments, err := u.appointmentRepo.FindByPatientAndDateRange(u.db.WithContext(ctx), patientID, now, now.AddDate(0, upcomingWindowMonths, 0))
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments: %+v", err)
		return nil, err
	}

	upcoming := make([]entity.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if ap.Status == entity.AppointmentStatusScheduled || ap.Status == entity.AppointmentStatusConfirmed {
			upcoming = append(upcoming, ap)
		}
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(upcoming, scheduling.ViewerPatient, now),
		Total:        len(upcoming),
	}, nil
}

func (u *patientAppointmentUsecase) GetAppointment(ctx context.Context, patientID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return nil, ErrNotAppointmentOwner
	}

	return converter.AppointmentToResponse(appointment, scheduling.ViewerPatient, u.clock.Now()), nil
}

func (u *patientAppointmentUsecase) CancelAppointment(ctx context.Context, patientID, appointmentID uuid.UUID, reason string) (*dto.AppointmentResponse, error) {
	var updated *entity.Appointment

	err := runInTxWithRetry(u.log, func() error {
		tx := u.db.WithContext(ctx).Begin()
		defer tx.Rollback()

		appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment: %+v", err)
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		if appointment.PatientID != patientID {
			return ErrNotAppointmentOwner
		}

		if err := scheduling.CanCancel(appointment.Status); err != nil {
			return err
		}

		oldStatus := appointment.Status
		appointment.Status = entity.AppointmentStatusCancelled
		if reason != "" {
			appointment.AppendNote(u.clock.Now(), "Cancelled", reason)
		}

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to cancel appointment: %+v", err)
			return err
		}

		u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionAppointmentCancel, "appointment", appointment.ID.String(), oldStatus, appointment.Status)

		if err := tx.Commit().Error; err != nil {
			return err
		}
		updated = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Send(ctx, updated.Patient.User.Email, service.NotificationCancellation, map[string]interface{}{
		"appointment_id": updated.ID.String(),
		"doctor_name":    updated.Doctor.User.FullName(),
		"date":           scheduling.FormatDate(updated.StartsAt),
		"time":           scheduling.FormatTime12h(updated.StartsAt),
	})

	return converter.AppointmentToResponse(updated, scheduling.ViewerPatient, u.clock.Now()), nil
}
