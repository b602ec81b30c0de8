package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	Date     string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time     string    `json:"time" validate:"required"` // Format: HH:mm or h:mm AM/PM
	Type     string    `json:"type" validate:"omitempty"`
	Reason   string    `json:"reason" validate:"omitempty,max=1000"`
	Notes    string    `json:"notes" validate:"omitempty"`
}

type RescheduleAppointmentRequest struct {
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,min=10"`
	Reason          string `json:"reason" validate:"omitempty,max=1000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateAppointmentDurationRequest struct {
	DurationMinutes int `json:"duration_minutes" validate:"required,min=10"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                   uuid.UUID `json:"id"`
	Date                 string    `json:"date"`
	Time                 string    `json:"time"`
	DurationMinutes      int       `json:"duration_minutes"`
	PatientID            string    `json:"patient_id"`
	PatientName          string    `json:"patient_name"`
	PatientEmail         string    `json:"patient_email,omitempty"`
	PatientPhone         string    `json:"patient_phone,omitempty"`
	DoctorID             uuid.UUID `json:"doctor_id"`
	DoctorName           string    `json:"doctor_name"`
	DoctorSpecialization string    `json:"doctor_specialization,omitempty"`
	Type                 string    `json:"type"`
	Status               string    `json:"status"`
	Reason               string    `json:"reason,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	MeetingLink          string    `json:"meeting_link,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type ScheduleSummaryResponse struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Upcoming   int `json:"upcoming"`
	Cancelled  int `json:"cancelled"`
}
