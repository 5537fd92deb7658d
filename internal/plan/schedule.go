package plan

import (
	"time"

	"github.com/mvalderrama/travel-service/internal/models"
)

// biweeklyStride is the quincena convention: a fixed 15-day step, not 14.
const biweeklyStride = 15

// ScheduleDates returns the ordered sequence of installment due dates for the
// requested range and frequency. If either date is absent or the range is
// inverted it returns an empty sequence rather than an error.
func ScheduleDates(req models.ScheduleRequest) []time.Time {
	if req.StartDate.IsZero() || req.EndDate.IsZero() || req.StartDate.After(req.EndDate) {
		return nil
	}
	if req.Frequency == models.FrequencyBiweekly {
		return biweeklyDates(req.StartDate, req.EndDate)
	}
	return monthlyDates(req.StartDate, req.EndDate)
}

// monthlyDates anchors every due date to the start date's day-of-month. When a
// month is too short the day clamps to that month's last day instead of
// skipping the month.
func monthlyDates(start, end time.Time) []time.Time {
	anchorDay := start.Day()
	year, month := start.Year(), start.Month()

	var dates []time.Time
	for {
		day := anchorDay
		if dim := daysInMonth(year, month); day > dim {
			day = dim
		}
		candidate := time.Date(year, month, day, 0, 0, 0, 0, start.Location())

		if candidate.After(end) {
			break
		}
		if !candidate.Before(start) {
			dates = append(dates, candidate)
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return dates
}

func biweeklyDates(start, end time.Time) []time.Time {
	var dates []time.Time
	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 0, biweeklyStride) {
		dates = append(dates, cursor)
	}
	return dates
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
