package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/delivery/http/middleware"
	"clinic-ops-backend/internal/usecase"
	"clinic-ops-backend/pkg/response"
	"clinic-ops-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReceptionistAppointmentHandler struct {
	receptionistUsecase usecase.ReceptionistAppointmentUsecase
	validator           *validator.CustomValidator
}

func NewReceptionistAppointmentHandler(receptionistUsecase usecase.ReceptionistAppointmentUsecase, validator *validator.CustomValidator) *ReceptionistAppointmentHandler {
	return &ReceptionistAppointmentHandler{
		receptionistUsecase: receptionistUsecase,
		validator:           validator,
	}
}

// GetAllAppointments lists clinic-wide appointments.
// Optional ?from=YYYY-MM-DD&to=YYYY-MM-DD narrows the range.
// @Summary List all appointments
// @Tags Receptionist
// @Security BearerAuth
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /receptionist/appointments [get]
func (h *ReceptionistAppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from != "" && to != "" {
		appointments, err := h.receptionistUsecase.GetAppointmentsByDateRange(r.Context(), from, to)
		if err != nil {
			writeAppointmentError(w, err, "Failed to get appointments")
			return
		}
		response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
		return
	}

	appointments, err := h.receptionistUsecase.GetAllAppointments(r.Context())
	if err != nil {
		writeAppointmentError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetRecentPendingAppointments lists the newest unconfirmed bookings
// @Summary List recent pending appointments
// @Tags Receptionist
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} response.Response
// @Router /receptionist/appointments/pending [get]
func (h *ReceptionistAppointmentHandler) GetRecentPendingAppointments(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	appointments, err := h.receptionistUsecase.GetRecentPendingAppointments(r.Context(), limit)
	if err != nil {
		writeAppointmentError(w, err, "Failed to get pending appointments")
		return
	}

	response.Success(w, http.StatusOK, "Pending appointments retrieved successfully", appointments)
}

// GetAuditTrail lists recent audit log entries
// @Summary List recent audit activity
// @Tags Receptionist
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} response.Response
// @Router /receptionist/audit-trail [get]
func (h *ReceptionistAppointmentHandler) GetAuditTrail(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.receptionistUsecase.GetAuditTrail(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit trail")
		return
	}

	response.Success(w, http.StatusOK, "Audit trail retrieved successfully", logs)
}

// GetAppointment returns one appointment
// @Summary Get an appointment
// @Tags Receptionist
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /receptionist/appointments/{id} [get]
func (h *ReceptionistAppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.receptionistUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		writeAppointmentError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// ConfirmAppointment confirms a pending booking
// @Summary Confirm an appointment
// @Tags Receptionist
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /receptionist/appointments/{id}/confirm [post]
func (h *ReceptionistAppointmentHandler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	receptionistID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.receptionistUsecase.ConfirmAppointment(r.Context(), receptionistID, appointmentID)
	if err != nil {
		writeAppointmentError(w, err, "Failed to confirm appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment confirmed successfully", appointment)
}

// RescheduleAppointment moves any appointment on behalf of the clinic
// @Summary Reschedule an appointment
// @Tags Receptionist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.RescheduleAppointmentRequest true "Reschedule Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /receptionist/appointments/{id}/reschedule [put]
func (h *ReceptionistAppointmentHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	receptionistID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.RescheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.receptionistUsecase.RescheduleAppointment(r.Context(), receptionistID, appointmentID, &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to reschedule appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled successfully", appointment)
}

// UpdateAppointmentDuration changes the slot length of an appointment
// @Summary Update appointment duration
// @Tags Receptionist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentDurationRequest true "Duration Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /receptionist/appointments/{id}/duration [put]
func (h *ReceptionistAppointmentHandler) UpdateAppointmentDuration(w http.ResponseWriter, r *http.Request) {
	receptionistID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentDurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.receptionistUsecase.UpdateAppointmentDuration(r.Context(), receptionistID, appointmentID, &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to update appointment duration")
		return
	}

	response.Success(w, http.StatusOK, "Appointment duration updated successfully", appointment)
}

// CancelAppointment cancels any appointment on behalf of the clinic
// @Summary Cancel an appointment
// @Tags Receptionist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /receptionist/appointments/{id}/cancel [post]
func (h *ReceptionistAppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	receptionistID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	appointment, err := h.receptionistUsecase.CancelAppointment(r.Context(), receptionistID, appointmentID, req.Reason)
	if err != nil {
		writeAppointmentError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}
