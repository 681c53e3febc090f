package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinStartDayOfMonth = 1
	// MaxStartDayOfMonth keeps every month boundary valid regardless of month length.
	MaxStartDayOfMonth = 28
)

// TimeUnit is the step of a relative "last N" period.
type TimeUnit string

const (
	TimeUnitDay   TimeUnit = "day"
	TimeUnitWeek  TimeUnit = "week"
	TimeUnitMonth TimeUnit = "month"
	TimeUnitYear  TimeUnit = "year"
)

// PeriodVariant identifies which interpretation of a TimePeriod is active.
type PeriodVariant int

const (
	PeriodVariantInvalid PeriodVariant = iota
	PeriodVariantMonth
	PeriodVariantYear
	PeriodVariantLastN
)

var (
	ErrInvalidStartDayOfMonth = fmt.Errorf("start day of month must be between %d and %d", MinStartDayOfMonth, MaxStartDayOfMonth)
	ErrInvalidMonth           = errors.New("month must be between 1 and 12")
	ErrInvalidPeriod          = errors.New("period must be exactly one of month, year or last N")
	ErrInvalidLastN           = errors.New("last N period needs a positive count and a known unit")
)

// LastN is a trailing window of N units ending now.
type LastN struct {
	N    int      `json:"n"`
	Unit TimeUnit `json:"unit"`
}

// TimePeriod is a logical period: a month (optionally with a year), a whole
// year, or a trailing window. It is immutable; navigation returns a new value.
type TimePeriod struct {
	Month *time.Month `json:"month,omitempty"`
	Year  *int        `json:"year,omitempty"`
	LastN *LastN      `json:"last_n,omitempty"`
}

// TimeRange is a concrete half-open interval [From, To) in UTC.
type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewMonthPeriod builds a month period.
func NewMonthPeriod(month time.Month, year int) (TimePeriod, error) {
	if month < time.January || month > time.December {
		return TimePeriod{}, ErrInvalidMonth
	}
	return TimePeriod{Month: &month, Year: &year}, nil
}

// CurrentMonthPeriod returns the budget month containing now. Before the
// start day, now still belongs to the previous month's budget.
func CurrentMonthPeriod(now time.Time, startDayOfMonth int) TimePeriod {
	now = now.UTC()
	month, year := now.Month(), now.Year()
	if now.Day() < startDayOfMonth {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		month, year = first.Month(), first.Year()
	}
	return TimePeriod{Month: &month, Year: &year}
}

// NewYearPeriod builds a whole-year period.
func NewYearPeriod(year int) TimePeriod {
	return TimePeriod{Year: &year}
}

// NewLastNPeriod builds a trailing window period.
func NewLastNPeriod(n int, unit TimeUnit) (TimePeriod, error) {
	if n <= 0 || !IsValidTimeUnit(unit) {
		return TimePeriod{}, ErrInvalidLastN
	}
	return TimePeriod{LastN: &LastN{N: n, Unit: unit}}, nil
}

// Variant returns the active interpretation of the period.
func (p TimePeriod) Variant() PeriodVariant {
	switch {
	case p.LastN != nil && p.Month == nil && p.Year == nil:
		return PeriodVariantLastN
	case p.LastN != nil:
		return PeriodVariantInvalid
	case p.Month != nil:
		return PeriodVariantMonth
	case p.Year != nil:
		return PeriodVariantYear
	default:
		return PeriodVariantInvalid
	}
}

// Validate checks that exactly one variant is active and its fields are in range.
func (p TimePeriod) Validate() error {
	switch p.Variant() {
	case PeriodVariantMonth:
		if *p.Month < time.January || *p.Month > time.December {
			return ErrInvalidMonth
		}
	case PeriodVariantLastN:
		if p.LastN.N <= 0 || !IsValidTimeUnit(p.LastN.Unit) {
			return ErrInvalidLastN
		}
	case PeriodVariantYear:
	default:
		return ErrInvalidPeriod
	}
	return nil
}

// Shift moves a month or year period by delta steps of its own unit. A month
// period without a year uses the year of now. Trailing windows are always
// relative to now and are returned unchanged.
func (p TimePeriod) Shift(delta int, now time.Time) TimePeriod {
	switch p.Variant() {
	case PeriodVariantMonth:
		year := now.Year()
		if p.Year != nil {
			year = *p.Year
		}
		// Day 1 keeps AddDate from overflowing into the following month.
		shifted := time.Date(year, *p.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
		month := shifted.Month()
		newYear := shifted.Year()
		return TimePeriod{Month: &month, Year: &newYear}
	case PeriodVariantYear:
		year := *p.Year + delta
		return TimePeriod{Year: &year}
	default:
		return p
	}
}

// Contains reports whether t is inside [From, To).
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// ValidateStartDayOfMonth rejects values that would make month boundaries ambiguous.
func ValidateStartDayOfMonth(day int) error {
	if day < MinStartDayOfMonth || day > MaxStartDayOfMonth {
		return ErrInvalidStartDayOfMonth
	}
	return nil
}

// IsValidTimeUnit checks if the unit is known
func IsValidTimeUnit(unit TimeUnit) bool {
	switch unit {
	case TimeUnitDay, TimeUnitWeek, TimeUnitMonth, TimeUnitYear:
		return true
	default:
		return false
	}
}
