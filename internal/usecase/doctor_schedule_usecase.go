package usecase

import (
	"context"
	"fmt"
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

type DoctorScheduleUsecase interface {
	GetSchedule(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetScheduleByDate(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error)
	// GetScheduleByOffset serves the relative-day views: 0 is today,
	// 1 tomorrow, -1 yesterday.
	GetScheduleByOffset(ctx context.Context, doctorID uuid.UUID, days int) (*dto.AppointmentListResponse, error)
	GetLastWeekSchedule(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAppointmentsByStatus(ctx context.Context, doctorID uuid.UUID, status string) (*dto.AppointmentListResponse, error)
	// GetScheduleSummary aggregates the doctor's appointments over the
	// closed date range [fromDate, toDate].
	GetScheduleSummary(ctx context.Context, doctorID uuid.UUID, fromDate, toDate string) (*dto.ScheduleSummaryResponse, error)
	RescheduleAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type doctorScheduleUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	clock           scheduling.Clock
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
	notifier        service.NotificationService
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock scheduling.Clock,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	notifier service.NotificationService,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:              db,
		log:             log,
		clock:           clock,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
		notifier:        notifier,
	}
}

func (u *doctorScheduleUsecase) GetSchedule(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list doctor schedule: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *doctorScheduleUsecase) GetScheduleByDate(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	day, err := scheduling.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return u.scheduleForDay(ctx, doctorID, day)
}

func (u *doctorScheduleUsecase) GetScheduleByOffset(ctx context.Context, doctorID uuid.UUID, days int) (*dto.AppointmentListResponse, error) {
	now := u.clock.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, days)
	return u.scheduleForDay(ctx, doctorID, day)
}

func (u *doctorScheduleUsecase) GetLastWeekSchedule(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	now := u.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	appointments, err := u.appointmentRepo.FindByDoctorAndDateRange(u.db.WithContext(ctx), doctorID, today.AddDate(0, 0, -7), today)
	if err != nil {
		u.log.Warnf("Failed to list last week schedule: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *doctorScheduleUsecase) GetAppointmentsByStatus(ctx context.Context, doctorID uuid.UUID, status string) (*dto.AppointmentListResponse, error) {
	parsed, err := scheduling.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByDoctorAndStatus(u.db.WithContext(ctx), doctorID, parsed)
	if err != nil {
		u.log.Warnf("Failed to list appointments by status: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *doctorScheduleUsecase) GetScheduleSummary(ctx context.Context, doctorID uuid.UUID, fromDate, toDate string) (*dto.ScheduleSummaryResponse, error) {
	from, to, err := parseClosedDateRange(fromDate, toDate)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByDoctorAndDateRange(u.db.WithContext(ctx), doctorID, from, to)
	if err != nil {
		u.log.Warnf("Failed to load schedule for summary: %+v", err)
		return nil, err
	}
	return converter.SummaryToResponse(scheduling.Summarize(appointments)), nil
}

func (u *doctorScheduleUsecase) RescheduleAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
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
		if appointment.DoctorID != doctorID {
			return ErrNotAppointmentOwner
		}

		if startsAt.Before(u.clock.Now()) {
			return ErrPastDateTime
		}

		duration := appointment.DurationMinutes
		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}

		if err := checkSlotAvailable(tx, u.log, u.doctorRepo, u.appointmentRepo, doctorID, startsAt, duration, appointment.ID); err != nil {
			return err
		}

		oldStart = appointment.StartsAt
		appointment.StartsAt = startsAt
		appointment.DurationMinutes = duration
		appointment.AppendNote(u.clock.Now(), "Rescheduled", rescheduleNoteText(oldStart, startsAt, req.Reason))

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to reschedule appointment: %+v", err)
			return err
		}

		u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionAppointmentReschedule, "appointment", appointment.ID.String(), oldStart, startsAt)

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

	return converter.AppointmentToResponse(updated, scheduling.ViewerDoctor, u.clock.Now()), nil
}

func (u *doctorScheduleUsecase) UpdateAppointmentStatus(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status, err := scheduling.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var updated *entity.Appointment

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
		if appointment.DoctorID != doctorID {
			return ErrNotAppointmentOwner
		}

		oldStatus := appointment.Status
		appointment.Status = status

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to update appointment status: %+v", err)
			return err
		}

		u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionAppointmentStatusChange, "appointment", appointment.ID.String(), oldStatus, status)

		if err := tx.Commit().Error; err != nil {
			return err
		}
		updated = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(updated, scheduling.ViewerDoctor, u.clock.Now()), nil
}

func (u *doctorScheduleUsecase) scheduleForDay(ctx context.Context, doctorID uuid.UUID, day time.Time) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorAndDateRange(u.db.WithContext(ctx), doctorID, day, day.Add(24*time.Hour))
	if err != nil {
		u.log.Warnf("Failed to list day schedule: %+v", err)
		return nil, err
	}
	return u.listResponse(appointments), nil
}

func (u *doctorScheduleUsecase) listResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments, scheduling.ViewerDoctor, u.clock.Now()),
		Total:        len(appointments),
	}
}

// rescheduleNotificationPayload carries both the old and the new slot so
// the rendered message can tell the patient what moved where.
func rescheduleNotificationPayload(ap *entity.Appointment, oldStart time.Time) map[string]interface{} {
	return map[string]interface{}{
		"appointment_id": ap.ID.String(),
		"doctor_name":    ap.Doctor.User.FullName(),
		"previous_date":  scheduling.FormatDate(oldStart),
		"previous_time":  scheduling.FormatTime12h(oldStart),
		"date":           scheduling.FormatDate(ap.StartsAt),
		"time":           scheduling.FormatTime12h(ap.StartsAt),
	}
}

// rescheduleNoteText builds the journal line body for a reschedule
func rescheduleNoteText(oldStart, newStart time.Time, reason string) string {
	text := fmt.Sprintf("moved from %s %s to %s %s",
		scheduling.FormatDate(oldStart), scheduling.FormatTime12h(oldStart),
		scheduling.FormatDate(newStart), scheduling.FormatTime12h(newStart))
	if reason != "" {
		text += ": " + reason
	}
	return text
}
