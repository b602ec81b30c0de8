package usecase

import (
	"time"

	"clinic-ops-backend/internal/scheduling"
)

// parseClosedDateRange turns two yyyy-MM-dd dates into the half-open
// instant range [from, to+1day), so every appointment on the end date is
// still inside the range.
func parseClosedDateRange(fromDate, toDate string) (time.Time, time.Time, error) {
	from, err := scheduling.ParseDate(fromDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := scheduling.ParseDate(toDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to.AddDate(0, 0, 1), nil
}
