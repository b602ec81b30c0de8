package converter

import (
	"testing"
	"time"

	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/scheduling"

	"github.com/google/uuid"
)

func sampleAppointment() *entity.Appointment {
	patientUserID := uuid.New()
	doctorUserID := uuid.New()

	return &entity.Appointment{
		ID:              uuid.New(),
		PatientID:       patientUserID,
		DoctorID:        doctorUserID,
		StartsAt:        time.Date(2026, 6, 10, 14, 30, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          entity.AppointmentStatusConfirmed,
		Type:            entity.AppointmentTypeVideoCall,
		Reason:          "Follow-up",
		Patient: entity.Patient{
			UserID:      patientUserID,
			PatientCode: "PT-20260601-A3F9C1",
			User: entity.User{
				ID:        patientUserID,
				FirstName: "Maya",
				LastName:  "Chen",
				Email:     "maya.chen@example.com",
			},
		},
		Doctor: entity.Doctor{
			UserID:         doctorUserID,
			Specialization: "Cardiology",
			User: entity.User{
				ID:        doctorUserID,
				FirstName: "Omar",
				LastName:  "Haddad",
			},
		},
	}
}

func TestAppointmentToResponse(t *testing.T) {
	ap := sampleAppointment()
	now := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)

	resp := AppointmentToResponse(ap, scheduling.ViewerPatient, now)

	if resp.Date != "2026-06-10" {
		t.Fatalf("Date = %q", resp.Date)
	}
	if resp.Time != "2:30 PM" {
		t.Fatalf("Time = %q", resp.Time)
	}
	if resp.DurationMinutes != 30 {
		t.Fatalf("DurationMinutes = %d", resp.DurationMinutes)
	}
	if resp.PatientID != "PT-20260601-A3F9C1" {
		t.Fatalf("PatientID = %q", resp.PatientID)
	}
	if resp.PatientName != "Maya Chen" {
		t.Fatalf("PatientName = %q", resp.PatientName)
	}
	if resp.DoctorName != "Dr. Omar Haddad" {
		t.Fatalf("DoctorName = %q", resp.DoctorName)
	}
	if resp.Type != "Video Call" {
		t.Fatalf("Type = %q", resp.Type)
	}
	if resp.Status != "confirmed" {
		t.Fatalf("Status = %q, want confirmed for a patient view", resp.Status)
	}
}

func TestAppointmentToResponse_ViewerDependentStatus(t *testing.T) {
	ap := sampleAppointment()
	now := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)

	if got := AppointmentToResponse(ap, scheduling.ViewerDoctor, now).Status; got != "upcoming" {
		t.Fatalf("doctor view status = %q, want upcoming", got)
	}

	// Same appointment after its start renders completed for everyone.
	later := time.Date(2026, 6, 10, 16, 0, 0, 0, time.UTC)
	if got := AppointmentToResponse(ap, scheduling.ViewerPatient, later).Status; got != "completed" {
		t.Fatalf("past view status = %q, want completed", got)
	}
}

func TestAppointmentToResponse_DefaultDuration(t *testing.T) {
	ap := sampleAppointment()
	ap.DurationMinutes = 0
	now := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)

	resp := AppointmentToResponse(ap, scheduling.ViewerReceptionist, now)
	if resp.DurationMinutes != scheduling.DefaultDurationMinutes {
		t.Fatalf("DurationMinutes = %d, want default %d", resp.DurationMinutes, scheduling.DefaultDurationMinutes)
	}
}

func TestAppointmentToResponse_MissingRelations(t *testing.T) {
	ap := sampleAppointment()
	ap.Patient = entity.Patient{}
	ap.Doctor = entity.Doctor{}
	now := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)

	resp := AppointmentToResponse(ap, scheduling.ViewerReceptionist, now)
	if resp.PatientName != "" || resp.DoctorName != "" {
		t.Fatalf("expected empty names without preloaded relations, got %q / %q", resp.PatientName, resp.DoctorName)
	}
}

func TestSummaryToResponse(t *testing.T) {
	resp := SummaryToResponse(scheduling.Summary{
		Total: 10, Completed: 5, InProgress: 1, Upcoming: 2, Cancelled: 2,
	})
	if resp.Total != 10 || resp.Completed != 5 || resp.InProgress != 1 || resp.Upcoming != 2 || resp.Cancelled != 2 {
		t.Fatalf("unexpected summary response: %+v", resp)
	}
}
