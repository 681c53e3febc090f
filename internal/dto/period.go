package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"budget-engine/internal/models"
)

// Navigation directions accepted by the adjacent period endpoint
const (
	DirectionNext     = "next"
	DirectionPrevious = "previous"
)

// ErrInvalidDirection is returned for a direction other than next or previous
var ErrInvalidDirection = errors.New("direction must be next or previous")

// PeriodQuery is the period selection sent as query parameters:
// ?month=3&year=2024, ?year=2024 or ?last=30&unit=day.
type PeriodQuery struct {
	Month string `query:"month"`
	Year  string `query:"year"`
	Last  string `query:"last"`
	Unit  string `query:"unit"`
}

// IsEmpty reports whether no period was selected
func (q PeriodQuery) IsEmpty() bool {
	return q.Month == "" && q.Year == "" && q.Last == "" && q.Unit == ""
}

// ToTimePeriod parses the query. An empty query selects the budget month
// containing now.
func (q PeriodQuery) ToTimePeriod(now time.Time, startDayOfMonth int) (models.TimePeriod, error) {
	if q.IsEmpty() {
		return models.CurrentMonthPeriod(now, startDayOfMonth), nil
	}

	if q.Last != "" || q.Unit != "" {
		if q.Month != "" || q.Year != "" {
			return models.TimePeriod{}, models.ErrInvalidPeriod
		}
		n, err := strconv.Atoi(q.Last)
		if err != nil {
			return models.TimePeriod{}, fmt.Errorf("%w: last %q", models.ErrInvalidLastN, q.Last)
		}
		unit := models.TimeUnit(strings.ToLower(q.Unit))
		if q.Unit == "" {
			unit = models.TimeUnitDay
		}
		return models.NewLastNPeriod(n, unit)
	}

	var period models.TimePeriod
	if q.Year != "" {
		year, err := strconv.Atoi(q.Year)
		if err != nil {
			return models.TimePeriod{}, fmt.Errorf("%w: year %q", models.ErrInvalidPeriod, q.Year)
		}
		period.Year = &year
	}
	if q.Month != "" {
		m, err := strconv.Atoi(q.Month)
		if err != nil {
			return models.TimePeriod{}, fmt.Errorf("%w: month %q", models.ErrInvalidMonth, q.Month)
		}
		month := time.Month(m)
		period.Month = &month
	}

	if err := period.Validate(); err != nil {
		return models.TimePeriod{}, err
	}
	return period, nil
}

// ParseDirection validates a navigation direction
func ParseDirection(direction string) (string, error) {
	switch d := strings.ToLower(strings.TrimSpace(direction)); d {
	case DirectionNext, DirectionPrevious:
		return d, nil
	default:
		return "", ErrInvalidDirection
	}
}

// PeriodResponse describes a logical period and the range it resolves to
type PeriodResponse struct {
	Month           *int             `json:"month,omitempty"`
	Year            *int             `json:"year,omitempty"`
	LastN           *models.LastN    `json:"last_n,omitempty"`
	Range           models.TimeRange `json:"range"`
	StartDayOfMonth int              `json:"start_day_of_month"`
}

// NewPeriodResponse builds the response for a resolved period
func NewPeriodResponse(period models.TimePeriod, timeRange models.TimeRange, startDay int) PeriodResponse {
	resp := PeriodResponse{
		Year:            period.Year,
		LastN:           period.LastN,
		Range:           timeRange,
		StartDayOfMonth: startDay,
	}
	if period.Month != nil {
		month := int(*period.Month)
		resp.Month = &month
	}
	return resp
}
