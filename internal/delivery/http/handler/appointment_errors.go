package handler

import (
	"errors"
	"net/http"

	"clinic-ops-backend/internal/scheduling"
	"clinic-ops-backend/internal/usecase"
	"clinic-ops-backend/pkg/response"
)

// writeAppointmentError maps scheduling and usecase errors to HTTP
// responses. Conflict and transition failures are 409, validation
// failures are 400, everything unrecognized falls back to 500.
func writeAppointmentError(w http.ResponseWriter, err error, fallback string) {
	var conflictErr *scheduling.ConflictError
	var hoursErr *scheduling.WorkingHoursError

	switch {
	case errors.Is(err, scheduling.ErrInvalidFormat),
		errors.Is(err, scheduling.ErrUnknownStatus),
		errors.Is(err, usecase.ErrPastDateTime):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &hoursErr):
		response.Error(w, http.StatusBadRequest, hoursErr.Error(), nil)
	case errors.As(err, &conflictErr):
		response.Error(w, http.StatusConflict, conflictErr.Error(), nil)
	case errors.Is(err, scheduling.ErrInvalidTransition),
		errors.Is(err, usecase.ErrDoctorUnavailable):
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrNotAppointmentOwner):
		response.Forbidden(w, "Appointment does not belong to this user")
	default:
		response.InternalServerError(w, fallback)
	}
}
