package scheduling

import (
	"strings"

	"clinic-ops-backend/internal/domain/entity"
)

// ParseAppointmentType maps a request string to an appointment type.
// Unknown or empty values fall back to IN_PERSON rather than failing;
// the self-service booking form is allowed to omit the field.
func ParseAppointmentType(s string) entity.AppointmentType {
	switch entity.AppointmentType(strings.ToUpper(strings.TrimSpace(s))) {
	case entity.AppointmentTypeInPerson:
		return entity.AppointmentTypeInPerson
	case entity.AppointmentTypeVideoCall:
		return entity.AppointmentTypeVideoCall
	case entity.AppointmentTypePhoneCall:
		return entity.AppointmentTypePhoneCall
	default:
		return entity.AppointmentTypeInPerson
	}
}

// DisplayType renders an appointment type as its human-facing label
func DisplayType(t entity.AppointmentType) string {
	switch t {
	case entity.AppointmentTypeInPerson:
		return "Consultation"
	case entity.AppointmentTypeVideoCall:
		return "Video Call"
	case entity.AppointmentTypePhoneCall:
		return "Phone Call"
	default:
		return strings.ReplaceAll(string(t), "_", " ")
	}
}
