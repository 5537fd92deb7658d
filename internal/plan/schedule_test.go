package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mvalderrama/travel-service/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthlyAnchorsStartDay(t *testing.T) {
	dates := ScheduleDates(models.ScheduleRequest{
		StartDate: date("2025-01-15"),
		EndDate:   date("2025-04-15"),
		Frequency: models.FrequencyMonthly,
	})

	require.Len(t, dates, 4)
	expected := []string{"2025-01-15", "2025-02-15", "2025-03-15", "2025-04-15"}
	for i, d := range dates {
		require.Equal(t, expected[i], d.Format("2006-01-02"))
	}
}

func TestMonthlyClampsShortMonths(t *testing.T) {
	dates := ScheduleDates(models.ScheduleRequest{
		StartDate: date("2025-01-31"),
		EndDate:   date("2025-03-31"),
		Frequency: models.FrequencyMonthly,
	})

	expected := []string{"2025-01-31", "2025-02-28", "2025-03-31"}
	require.Len(t, dates, len(expected))
	for i, d := range dates {
		require.Equal(t, expected[i], d.Format("2006-01-02"))
	}
}

func TestMonthlyClampsLeapFebruary(t *testing.T) {
	dates := ScheduleDates(models.ScheduleRequest{
		StartDate: date("2024-01-31"),
		EndDate:   date("2024-03-31"),
		Frequency: models.FrequencyMonthly,
	})

	expected := []string{"2024-01-31", "2024-02-29", "2024-03-31"}
	require.Len(t, dates, len(expected))
	for i, d := range dates {
		require.Equal(t, expected[i], d.Format("2006-01-02"))
	}
}

func TestMonthlyRollsYearBoundary(t *testing.T) {
	dates := ScheduleDates(models.ScheduleRequest{
		StartDate: date("2024-11-10"),
		EndDate:   date("2025-02-10"),
		Frequency: models.FrequencyMonthly,
	})

	expected := []string{"2024-11-10", "2024-12-10", "2025-01-10", "2025-02-10"}
	require.Len(t, dates, len(expected))
	for i, d := range dates {
		require.Equal(t, expected[i], d.Format("2006-01-02"))
	}
}

func TestBiweeklySpacing(t *testing.T) {
	start, end := date("2025-01-01"), date("2025-03-01")
	dates := ScheduleDates(models.ScheduleRequest{
		StartDate: start,
		EndDate:   end,
		Frequency: models.FrequencyBiweekly,
	})

	require.NotEmpty(t, dates)
	require.True(t, dates[0].Equal(start))
	for i := 1; i < len(dates); i++ {
		require.Equal(t, 15*24*time.Hour, dates[i].Sub(dates[i-1]))
	}
	require.False(t, dates[len(dates)-1].After(end))
	require.True(t, dates[len(dates)-1].AddDate(0, 0, 15).After(end))
}

func TestInvertedRangeYieldsEmpty(t *testing.T) {
	dates := ScheduleDates(models.ScheduleRequest{
		StartDate: date("2025-05-01"),
		EndDate:   date("2025-01-01"),
		Frequency: models.FrequencyMonthly,
	})
	require.Empty(t, dates)
}

func TestMissingDatesYieldEmpty(t *testing.T) {
	require.Empty(t, ScheduleDates(models.ScheduleRequest{
		EndDate:   date("2025-01-01"),
		Frequency: models.FrequencyMonthly,
	}))
	require.Empty(t, ScheduleDates(models.ScheduleRequest{
		StartDate: date("2025-01-01"),
		Frequency: models.FrequencyBiweekly,
	}))
}

func TestScheduleIsDeterministic(t *testing.T) {
	req := models.ScheduleRequest{
		StartDate: date("2025-01-31"),
		EndDate:   date("2025-12-31"),
		Frequency: models.FrequencyMonthly,
	}
	first := ScheduleDates(req)
	second := ScheduleDates(req)
	require.Equal(t, first, second)
}

func TestSingleDayRange(t *testing.T) {
	for _, freq := range []models.Frequency{models.FrequencyMonthly, models.FrequencyBiweekly} {
		dates := ScheduleDates(models.ScheduleRequest{
			StartDate: date("2025-06-10"),
			EndDate:   date("2025-06-10"),
			Frequency: freq,
		})
		require.Len(t, dates, 1)
		require.Equal(t, "2025-06-10", dates[0].Format("2006-01-02"))
	}
}
