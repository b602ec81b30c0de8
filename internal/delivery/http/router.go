package http

import (
	"net/http"

	"clinic-ops-backend/internal/delivery/http/handler"
	"clinic-ops-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientAppointmentHandler
	doctorHandler       *handler.DoctorScheduleHandler
	receptionistHandler *handler.ReceptionistAppointmentHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientAppointmentHandler,
	doctorHandler *handler.DoctorScheduleHandler,
	receptionistHandler *handler.ReceptionistAppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		doctorHandler:       doctorHandler,
		receptionistHandler: receptionistHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/register/receptionist", r.authHandler.RegisterReceptionist).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/appointments", r.patientHandler.BookAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.patientHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/upcoming", r.patientHandler.GetUpcomingAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}", r.patientHandler.GetAppointment).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.patientHandler.CancelAppointment).Methods(http.MethodPost)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor/schedule").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("", r.doctorHandler.GetSchedule).Methods(http.MethodGet)
	doctor.HandleFunc("/today", r.doctorHandler.GetTodaySchedule).Methods(http.MethodGet)
	doctor.HandleFunc("/tomorrow", r.doctorHandler.GetTomorrowSchedule).Methods(http.MethodGet)
	doctor.HandleFunc("/yesterday", r.doctorHandler.GetYesterdaySchedule).Methods(http.MethodGet)
	doctor.HandleFunc("/last-week", r.doctorHandler.GetLastWeekSchedule).Methods(http.MethodGet)
	doctor.HandleFunc("/summary", r.doctorHandler.GetScheduleSummary).Methods(http.MethodGet)
	doctor.HandleFunc("/status/{status}", r.doctorHandler.GetAppointmentsByStatus).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/reschedule", r.doctorHandler.RescheduleAppointment).Methods(http.MethodPut)
	doctor.HandleFunc("/appointments/{id}/status", r.doctorHandler.UpdateAppointmentStatus).Methods(http.MethodPut)

	// Receptionist routes (protected - receptionist only)
	receptionist := api.PathPrefix("/receptionist").Subrouter()
	receptionist.Use(r.authMiddleware.Authenticate)
	receptionist.Use(middleware.RequireReceptionist)
	receptionist.HandleFunc("/appointments", r.receptionistHandler.GetAllAppointments).Methods(http.MethodGet)
	receptionist.HandleFunc("/appointments/pending", r.receptionistHandler.GetRecentPendingAppointments).Methods(http.MethodGet)
	receptionist.HandleFunc("/audit-trail", r.receptionistHandler.GetAuditTrail).Methods(http.MethodGet)
	receptionist.HandleFunc("/appointments/{id}", r.receptionistHandler.GetAppointment).Methods(http.MethodGet)
	receptionist.HandleFunc("/appointments/{id}/confirm", r.receptionistHandler.ConfirmAppointment).Methods(http.MethodPost)
	receptionist.HandleFunc("/appointments/{id}/reschedule", r.receptionistHandler.RescheduleAppointment).Methods(http.MethodPut)
	receptionist.HandleFunc("/appointments/{id}/duration", r.receptionistHandler.UpdateAppointmentDuration).Methods(http.MethodPut)
	receptionist.HandleFunc("/appointments/{id}/cancel", r.receptionistHandler.CancelAppointment).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
