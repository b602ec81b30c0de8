package converter

import (
	"time"

	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/scheduling"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its view DTO.
// The status label depends on the viewer role and the current time; the
// stored status is never exposed directly.
func AppointmentToResponse(ap *entity.Appointment, viewer scheduling.Viewer, now time.Time) *dto.AppointmentResponse {
	if ap == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:              ap.ID,
		Date:            scheduling.FormatDate(ap.StartsAt),
		Time:            scheduling.FormatTime12h(ap.StartsAt),
		DurationMinutes: scheduling.EffectiveDuration(ap.DurationMinutes),
		DoctorID:        ap.DoctorID,
		Type:            scheduling.DisplayType(ap.Type),
		Status:          scheduling.DisplayStatus(ap.Status, ap.StartsAt, now, viewer),
		Reason:          ap.Reason,
		Notes:           ap.Notes,
		MeetingLink:     ap.MeetingLink,
	}

	if ap.Patient.UserID != uuid.Nil {
		resp.PatientID = ap.Patient.PatientCode
		resp.PatientName = ap.Patient.User.FullName()
		resp.PatientEmail = ap.Patient.User.Email
		resp.PatientPhone = ap.Patient.User.PhoneNumber
	}

	if ap.Doctor.UserID != uuid.Nil {
		resp.DoctorName = "Dr. " + ap.Doctor.User.FullName()
		resp.DoctorSpecialization = ap.Doctor.Specialization
	}

	return resp
}

// AppointmentsToResponses converts a slice of appointments for one viewer
func AppointmentsToResponses(appointments []entity.Appointment, viewer scheduling.Viewer, now time.Time) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i], viewer, now)
	}
	return responses
}

// SummaryToResponse converts a schedule summary to its DTO
func SummaryToResponse(s scheduling.Summary) *dto.ScheduleSummaryResponse {
	return &dto.ScheduleSummaryResponse{
		Total:      s.Total,
		Completed:  s.Completed,
		InProgress: s.InProgress,
		Upcoming:   s.Upcoming,
		Cancelled:  s.Cancelled,
	}
}
