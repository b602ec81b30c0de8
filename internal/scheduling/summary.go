package scheduling

import "clinic-ops-backend/internal/domain/entity"

// Summary holds per-range appointment counts for dashboards
type Summary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Upcoming   int `json:"upcoming"`
	Cancelled  int `json:"cancelled"`
}

// Summarize buckets appointments by stored status. SCHEDULED and CONFIRMED
// count as upcoming, NO_SHOW counts as cancelled.
func Summarize(appointments []entity.Appointment) Summary {
	s := Summary{Total: len(appointments)}
	for i := range appointments {
		switch appointments[i].Status {
		case entity.AppointmentStatusCompleted:
			s.Completed++
		case entity.AppointmentStatusInProgress:
			s.InProgress++
		case entity.AppointmentStatusScheduled, entity.AppointmentStatusConfirmed:
			s.Upcoming++
		case entity.AppointmentStatusCancelled, entity.AppointmentStatusNoShow:
			s.Cancelled++
		}
	}
	return s
}
