package services

import (
	"time"

	"budget-engine/internal/models"
)

type timePeriodResolver struct {
	startDayOfMonth int
	now             func() time.Time
}

// NewTimePeriodResolver creates a resolver aligned on startDayOfMonth. A start
// day outside 1..28 is rejected. now defaults to time.Now.
func NewTimePeriodResolver(startDayOfMonth int, now func() time.Time) (TimePeriodResolverInterface, error) {
	if err := models.ValidateStartDayOfMonth(startDayOfMonth); err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &timePeriodResolver{
		startDayOfMonth: startDayOfMonth,
		now:             now,
	}, nil
}

// Resolve returns the half-open UTC range covered by period.
func (r *timePeriodResolver) Resolve(period models.TimePeriod) (models.TimeRange, error) {
	if err := period.Validate(); err != nil {
		return models.TimeRange{}, err
	}

	now := r.now().UTC()

	switch period.Variant() {
	case models.PeriodVariantMonth:
		year := now.Year()
		if period.Year != nil {
			year = *period.Year
		}
		from := time.Date(year, *period.Month, r.startDayOfMonth, 0, 0, 0, 0, time.UTC)
		return models.TimeRange{From: from, To: from.AddDate(0, 1, 0)}, nil

	case models.PeriodVariantYear:
		from := time.Date(*period.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return models.TimeRange{From: from, To: from.AddDate(1, 0, 0)}, nil

	default:
		return models.TimeRange{From: trailingStart(now, *period.LastN), To: now}, nil
	}
}

func trailingStart(now time.Time, window models.LastN) time.Time {
	switch window.Unit {
	case models.TimeUnitDay:
		return now.AddDate(0, 0, -window.N)
	case models.TimeUnitWeek:
		return now.AddDate(0, 0, -7*window.N)
	case models.TimeUnitMonth:
		return now.AddDate(0, -window.N, 0)
	default:
		return now.AddDate(-window.N, 0, 0)
	}
}

// Next advances a month or year period by one step of its own unit
func (r *timePeriodResolver) Next(period models.TimePeriod) models.TimePeriod {
	return period.Shift(1, r.now())
}

// Previous moves a month or year period back by one step of its own unit
func (r *timePeriodResolver) Previous(period models.TimePeriod) models.TimePeriod {
	return period.Shift(-1, r.now())
}

func (r *timePeriodResolver) StartDayOfMonth() int {
	return r.startDayOfMonth
}
