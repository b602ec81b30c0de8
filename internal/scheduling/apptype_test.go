package scheduling

import (
	"testing"

	"clinic-ops-backend/internal/domain/entity"
)

func TestParseAppointmentType(t *testing.T) {
	cases := []struct {
		in   string
		want entity.AppointmentType
	}{
		{"IN_PERSON", entity.AppointmentTypeInPerson},
		{"video_call", entity.AppointmentTypeVideoCall},
		{" Phone_Call ", entity.AppointmentTypePhoneCall},
		// Unknown and empty values fall back rather than failing.
		{"", entity.AppointmentTypeInPerson},
		{"HOUSE_CALL", entity.AppointmentTypeInPerson},
	}

	for _, tc := range cases {
		if got := ParseAppointmentType(tc.in); got != tc.want {
			t.Fatalf("ParseAppointmentType(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDisplayType(t *testing.T) {
	cases := []struct {
		in   entity.AppointmentType
		want string
	}{
		{entity.AppointmentTypeInPerson, "Consultation"},
		{entity.AppointmentTypeVideoCall, "Video Call"},
		{entity.AppointmentTypePhoneCall, "Phone Call"},
		{entity.AppointmentType("HOME_VISIT"), "HOME VISIT"},
	}

	for _, tc := range cases {
		if got := DisplayType(tc.in); got != tc.want {
			t.Fatalf("DisplayType(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
