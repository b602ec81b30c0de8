package scheduling

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	// Accepted time-of-day layouts, tried in order: 24-hour first,
	// then 12-hour with AM/PM.
	time24Layout     = "15:04"
	time12Layout     = "3:04 PM"
	time12ZeroLayout = "03:04 PM"
)

// ErrInvalidFormat is returned when a date or time string cannot be parsed
var ErrInvalidFormat = errors.New("invalid date or time format")

// ParseDate parses a calendar date in yyyy-MM-dd form
func ParseDate(date string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be yyyy-MM-dd", ErrInvalidFormat, date)
	}
	return d, nil
}

// ParseDateTime combines a yyyy-MM-dd date with a time of day into a single
// wall-clock instant. The time accepts HH:mm, h:mm AM/PM or hh:mm AM/PM.
func ParseDateTime(date, timeOfDay string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}

	tod, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(d.Year(), d.Month(), d.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC), nil
}

func parseTimeOfDay(timeOfDay string) (time.Time, error) {
	normalized := strings.ToUpper(strings.TrimSpace(timeOfDay))
	for _, layout := range []string{time24Layout, time12Layout, time12ZeroLayout} {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: time %q must be HH:mm or h:mm AM/PM", ErrInvalidFormat, timeOfDay)
}

// FormatTime12h renders an instant's time of day as h:mm AM/PM
func FormatTime12h(t time.Time) string {
	return t.Format(time12Layout)
}

// FormatDate renders an instant's calendar date as yyyy-MM-dd
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// minutesOfDay converts an instant's wall-clock time to minutes since midnight
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
