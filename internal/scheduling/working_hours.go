package scheduling

import (
	"fmt"
	"time"
)

// Default daily working hours applied when a doctor has not configured any
const (
	DefaultWorkStartTime = "09:00"
	DefaultWorkEndTime   = "17:00"
)

// WorkingHoursError reports a slot outside the doctor's working hours.
// Start and End carry the effective bounds in 12-hour form for display.
type WorkingHoursError struct {
	Start string
	End   string
}

func (e *WorkingHoursError) Error() string {
	return fmt.Sprintf("the selected time is outside the doctor's working hours, please select a time between %s and %s", e.Start, e.End)
}

// CheckWorkingHours validates that the candidate instant's time of day falls
// within the doctor's configured daily window. Empty bounds default to
// 09:00-17:00. Both boundaries are inclusive: a slot starting exactly at
// closing time is allowed.
//
// Malformed configured hours fail open: a broken doctor profile must not
// deny service, so the slot is accepted.
func CheckWorkingHours(at time.Time, workStart, workEnd string) error {
	if workStart == "" {
		workStart = DefaultWorkStartTime
	}
	if workEnd == "" {
		workEnd = DefaultWorkEndTime
	}

	start, err := parseTimeOfDay(workStart)
	if err != nil {
		return nil
	}
	end, err := parseTimeOfDay(workEnd)
	if err != nil {
		return nil
	}

	candidate := minutesOfDay(at)
	if candidate < minutesOfDay(start) || candidate > minutesOfDay(end) {
		return &WorkingHoursError{
			Start: FormatTime12h(start),
			End:   FormatTime12h(end),
		}
	}

	return nil
}
