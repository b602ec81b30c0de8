package handler

import (
	"encoding/json"
	"net/http"

	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/delivery/http/middleware"
	"clinic-ops-backend/internal/usecase"
	"clinic-ops-backend/pkg/response"
	"clinic-ops-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorScheduleHandler struct {
	scheduleUsecase usecase.DoctorScheduleUsecase
	validator       *validator.CustomValidator
}

func NewDoctorScheduleHandler(scheduleUsecase usecase.DoctorScheduleUsecase, validator *validator.CustomValidator) *DoctorScheduleHandler {
	return &DoctorScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// GetSchedule lists the authenticated doctor's full schedule.
// Optional ?date=YYYY-MM-DD narrows it to one day.
// @Summary Get my schedule
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /doctor/schedule [get]
func (h *DoctorScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if date := r.URL.Query().Get("date"); date != "" {
		schedule, err := h.scheduleUsecase.GetScheduleByDate(r.Context(), doctorID, date)
		if err != nil {
			writeAppointmentError(w, err, "Failed to get schedule")
			return
		}
		response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
		return
	}

	schedule, err := h.scheduleUsecase.GetSchedule(r.Context(), doctorID)
	if err != nil {
		writeAppointmentError(w, err, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// GetTodaySchedule lists today's appointments
// @Summary Get today's schedule
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/schedule/today [get]
func (h *DoctorScheduleHandler) GetTodaySchedule(w http.ResponseWriter, r *http.Request) {
	h.scheduleByOffset(w, r, 0)
}

// GetTomorrowSchedule lists tomorrow's appointments
// @Summary Get tomorrow's schedule
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/schedule/tomorrow [get]
func (h *DoctorScheduleHandler) GetTomorrowSchedule(w http.ResponseWriter, r *http.Request) {
	h.scheduleByOffset(w, r, 1)
}

// GetYesterdaySchedule lists yesterday's appointments
// @Summary Get yesterday's schedule
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/schedule/yesterday [get]
func (h *DoctorScheduleHandler) GetYesterdaySchedule(w http.ResponseWriter, r *http.Request) {
	h.scheduleByOffset(w, r, -1)
}

// GetLastWeekSchedule lists the past seven days of appointments
// @Summary Get last week's schedule
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/schedule/last-week [get]
func (h *DoctorScheduleHandler) GetLastWeekSchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	schedule, err := h.scheduleUsecase.GetLastWeekSchedule(r.Context(), doctorID)
	if err != nil {
		writeAppointmentError(w, err, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// GetAppointmentsByStatus filters the doctor's appointments by stored status
// @Summary Get appointments by status
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Param status path string true "Appointment status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/schedule/status/{status} [get]
func (h *DoctorScheduleHandler) GetAppointmentsByStatus(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	schedule, err := h.scheduleUsecase.GetAppointmentsByStatus(r.Context(), doctorID, mux.Vars(r)["status"])
	if err != nil {
		writeAppointmentError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", schedule)
}

// GetScheduleSummary returns appointment counts by bucket over a date range
// @Summary Get schedule summary
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {object} response.Response
// @Router /doctor/schedule/summary [get]
func (h *DoctorScheduleHandler) GetScheduleSummary(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	summary, err := h.scheduleUsecase.GetScheduleSummary(r.Context(), doctorID, r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeAppointmentError(w, err, "Failed to get schedule summary")
		return
	}

	response.Success(w, http.StatusOK, "Schedule summary retrieved successfully", summary)
}

// RescheduleAppointment moves one of the doctor's appointments
// @Summary Reschedule an appointment
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.RescheduleAppointmentRequest true "Reschedule Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctor/schedule/appointments/{id}/reschedule [put]
func (h *DoctorScheduleHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
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

	appointment, err := h.scheduleUsecase.RescheduleAppointment(r.Context(), doctorID, appointmentID, &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to reschedule appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled successfully", appointment)
}

// UpdateAppointmentStatus moves an appointment to a new stored status
// @Summary Update appointment status
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/schedule/appointments/{id}/status [put]
func (h *DoctorScheduleHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.scheduleUsecase.UpdateAppointmentStatus(r.Context(), doctorID, appointmentID, &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

func (h *DoctorScheduleHandler) scheduleByOffset(w http.ResponseWriter, r *http.Request, days int) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	schedule, err := h.scheduleUsecase.GetScheduleByOffset(r.Context(), doctorID, days)
	if err != nil {
		writeAppointmentError(w, err, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}
