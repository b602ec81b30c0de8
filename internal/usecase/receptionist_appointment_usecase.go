package usecase

import (
	"context"
	"time"

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

const (
	// defaultRecentPendingLimit bounds the front-desk "needs confirmation" list
	defaultRecentPendingLimit = 10

	defaultAuditTrailLimit = 50
)

type ReceptionistAppointmentUsecase interface {
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDateRange(ctx context.Context, fromDate, toDate string) (*dto.AppointmentListResponse, error)
	GetRecentPendingAppointments(ctx context.Context, limit int) (*dto.AppointmentListResponse, error)
	GetAuditTrail(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	ConfirmAppointment(ctx context.Context, receptionistID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, receptionistID, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentDuration(ctx context.Context, receptionistID, appointmentID uuid.UUID, req *dto.UpdateAppointmentDurationRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, receptionistID, appointmentID uuid.UUID, reason string) (*dto.AppointmentResponse, error)
}

type receptionistAppointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	clock           scheduling.Clock
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	auditLogRepo    repository.AuditLogRepository
	auditService    service.AuditService
	notifier        service.NotificationService
}

func NewReceptionistAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock scheduling.Clock,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	auditLogRepo repository.AuditLogRepository,
	auditService service.AuditService,
	notifier service.NotificationService,
) ReceptionistAppointmentUsecase {
	return &receptionistAppointmentUsecase{
		db:              db,
		log:             log,
		clock:           clock,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditLogRepo:    auditLogRepo,
		auditService:    auditService,
		notifier:        notifier,
	}
}

func (u *receptionistAppointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *receptionistAppointmentUsecase) GetAppointmentsByDateRange(ctx context.Context, fromDate, toDate string) (*dto.AppointmentListResponse, error) {
	from, to, err := parseClosedDateRange(fromDate, toDate)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAllByDateRange(u.db.WithContext(ctx), from, to)
	if err != nil {
		u.log.Warnf("Failed to list appointments by range: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *receptionistAppointmentUsecase) GetRecentPendingAppointments(ctx context.Context, limit int) (*dto.AppointmentListResponse, error) {
	if limit <= 0 {
		limit = defaultRecentPendingLimit
	}

	appointments, err := u.appointmentRepo.FindRecentByStatus(u.db.WithContext(ctx), entity.AppointmentStatusScheduled, limit)
	if err != nil {
		u.log.Warnf("Failed to list pending appointments: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *receptionistAppointmentUsecase) GetAuditTrail(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 {
		limit = defaultAuditTrailLimit
	}

	logs, err := u.auditLogRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to list audit trail: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *receptionistAppointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment, scheduling.ViewerReceptionist, u.clock.Now()), nil
}

// ConfirmAppointment re-validates the stored slot before moving the
// appointment to CONFIRMED. The slot may have become invalid since booking
// (the doctor's hours changed, or a reschedule created an overlap), so
// confirmation repeats the full availability check.
func (u *receptionistAppointmentUsecase) ConfirmAppointment(ctx context.Context, receptionistID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
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

		if err := checkSlotAvailable(tx, u.log, u.doctorRepo, u.appointmentRepo, appointment.DoctorID, appointment.StartsAt, appointment.DurationMinutes, appointment.ID); err != nil {
			return err
		}

		oldStatus := appointment.Status
		appointment.Status = entity.AppointmentStatusConfirmed

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to confirm appointment: %+v", err)
			return err
		}

		u.auditService.LogUpdate(ctx, tx, &receptionistID, entity.AuditActionAppointmentConfirm, "appointment", appointment.ID.String(), oldStatus, appointment.Status)

		if err := tx.Commit().Error; err != nil {
			return err
		}
		updated = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Send(ctx, updated.Patient.User.Email, service.NotificationConfirmation, map[string]interface{}{
		"appointment_id": updated.ID.String(),
		"doctor_name":    updated.Doctor.User.FullName(),
		"date":           scheduling.FormatDate(updated.StartsAt),
		"time":           scheduling.FormatTime12h(updated.StartsAt),
	})

	return converter.AppointmentToResponse(updated, scheduling.ViewerReceptionist, u.clock.Now()), nil
}

func (u *receptionistAppointmentUsecase) RescheduleAppointment(ctx context.Context, receptionistID, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	startsAt, err := scheduling.ParseDateTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	var updated *entity.Appointment
	var oldStart time.Time

	err = runInTxWithRetry(u.log, func() error {
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

		if startsAt.Before(u.clock.Now()) {
			return ErrPastDateTime
		}

		duration := appointment.DurationMinutes
		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}

		if err := checkSlotAvailable(tx, u.log, u.doctorRepo, u.appointmentRepo, appointment.DoctorID, startsAt, duration, appointment.ID); err != nil {
			return err
		}

		oldStart = appointment.StartsAt
		appointment.StartsAt = startsAt
		appointment.DurationMinutes = duration
		appointment.AppendNote(u.clock.Now(), "Rescheduled by receptionist", rescheduleNoteText(oldStart, startsAt, req.Reason))

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to reschedule appointment: %+v", err)
			return err
		}

		u.auditService.LogUpdate(ctx, tx, &receptionistID, entity.AuditActionAppointmentReschedule, "appointment", appointment.ID.String(), oldStart, startsAt)

		if err := tx.Commit().Error; err != nil {
			return err
		}
		updated = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Send(ctx, updated.Patient.User.Email, service.NotificationReschedule, rescheduleNotificationPayload(updated, oldStart))

	return converter.AppointmentToResponse(updated, scheduling.ViewerReceptionist, u.clock.Now()), nil
}

func (u *receptionistAppointmentUsecase) UpdateAppointmentDuration(ctx context.Context, receptionistID, appointmentID uuid.UUID, req *dto.UpdateAppointmentDurationRequest) (*dto.AppointmentResponse, error) {
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

		// The longer slot must still fit around the neighbors.
		if err := checkSlotAvailable(tx, u.log, u.doctorRepo, u.appointmentRepo, appointment.DoctorID, appointment.StartsAt, req.DurationMinutes, appointment.ID); err != nil {
			return err
		}

		oldDuration := appointment.DurationMinutes
		appointment.DurationMinutes = req.DurationMinutes

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to update appointment duration: %+v", err)
			return err
		}

		u.auditService.LogUpdate(ctx, tx, &receptionistID, entity.AuditActionAppointmentDuration, "appointment", appointment.ID.String(), oldDuration, req.DurationMinutes)

		if err := tx.Commit().Error; err != nil {
			return err
		}
		updated = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(updated, scheduling.ViewerReceptionist, u.clock.Now()), nil
}

func (u *receptionistAppointmentUsecase) CancelAppointment(ctx context.Context, receptionistID, appointmentID uuid.UUID, reason string) (*dto.AppointmentResponse, error) {
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

		if err := scheduling.CanCancel(appointment.Status); err != nil {
			return err
		}

		oldStatus := appointment.Status
		appointment.Status = entity.AppointmentStatusCancelled
		if reason != "" {
			appointment.AppendNote(u.clock.Now(), "Cancelled by receptionist", reason)
		}

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to cancel appointment: %+v", err)
			return err
		}

		u.auditService.LogUpdate(ctx, tx, &receptionistID, entity.AuditActionAppointmentCancel, "appointment", appointment.ID.String(), oldStatus, appointment.Status)

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

	return converter.AppointmentToResponse(updated, scheduling.ViewerReceptionist, u.clock.Now()), nil
}

func (u *receptionistAppointmentUsecase) listResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments, scheduling.ViewerReceptionist, u.clock.Now()),
		Total:        len(appointments),
	}
}
