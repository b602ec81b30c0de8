package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the canonical stored status of an appointment.
// There is exactly one stored status per appointment at all times;
// role-dependent labels are derived at read time, never stored.
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentStatusConfirmed  AppointmentStatus = "CONFIRMED"
	AppointmentStatusInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentStatusCompleted  AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled  AppointmentStatus = "CANCELLED"
	AppointmentStatusNoShow     AppointmentStatus = "NO_SHOW"
)

// AppointmentType distinguishes how the consultation takes place
type AppointmentType string

const (
	AppointmentTypeInPerson  AppointmentType = "IN_PERSON"
	AppointmentTypeVideoCall AppointmentType = "VIDEO_CALL"
	AppointmentTypePhoneCall AppointmentType = "PHONE_CALL"
)

// Appointment represents a booked slot between a patient and a doctor.
// StartsAt is a wall-clock instant in the doctor's local practice time.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_starts_at" json:"doctor_id"`
	StartsAt        time.Time         `gorm:"not null;index:idx_appointments_doctor_starts_at" json:"starts_at"`
	DurationMinutes int               `gorm:"not null;default:20" json:"duration_minutes"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	Type            AppointmentType   `gorm:"type:varchar(20);not null;default:'IN_PERSON'" json:"type"`
	Reason          string            `gorm:"type:varchar(1000)" json:"reason,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	MeetingLink     string            `gorm:"type:varchar(500)" json:"meeting_link,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsActive reports whether the appointment still occupies its slot.
// Cancelled and no-show appointments never conflict with new bookings.
func (a *Appointment) IsActive() bool {
	return a.Status != AppointmentStatusCancelled && a.Status != AppointmentStatusNoShow
}

// IsTerminal reports whether the appointment reached a final state
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCancelled
}

// EndsAt returns the instant the appointment is scheduled to finish
func (a *Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// AppendNote appends a timestamped annotation line to the notes journal.
// Notes are append-only; existing entries are never rewritten.
func (a *Appointment) AppendNote(at time.Time, tag, text string) {
	line := "[" + tag + " " + at.Format("2006-01-02 15:04") + "] " + text
	if a.Notes == "" {
		a.Notes = line
		return
	}
	a.Notes = a.Notes + "\n" + line
}
