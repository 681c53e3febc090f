package services

import (
	"testing"
	"time"

	"budget-engine/internal/models"

	"github.com/stretchr/testify/suite"
)

type TimePeriodResolverSuite struct {
	suite.Suite
	now      time.Time
	resolver TimePeriodResolverInterface
}

func TestTimePeriodResolverSuite(t *testing.T) {
	suite.Run(t, new(TimePeriodResolverSuite))
}

func (s *TimePeriodResolverSuite) SetupTest() {
	s.now = time.Date(2026, time.June, 15, 13, 30, 0, 0, time.UTC)
	resolver, err := NewTimePeriodResolver(10, func() time.Time { return s.now })
	s.Require().NoError(err)
	s.resolver = resolver
}

func (s *TimePeriodResolverSuite) month(m time.Month, year int) models.TimePeriod {
	p, err := models.NewMonthPeriod(m, year)
	s.Require().NoError(err)
	return p
}

func (s *TimePeriodResolverSuite) TestNew_RejectsStartDayOutOfRange() {
	for _, day := range []int{-1, 0, 29, 31} {
		resolver, err := NewTimePeriodResolver(day, nil)
		s.ErrorIs(err, models.ErrInvalidStartDayOfMonth, "day %d", day)
		s.Nil(resolver)
	}
}

func (s *TimePeriodResolverSuite) TestResolve_MonthAlignedOnStartDay() {
	r, err := s.resolver.Resolve(s.month(time.March, 2024))
	s.Require().NoError(err)

	s.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), r.From)
	s.Equal(time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC), r.To)
}

func (s *TimePeriodResolverSuite) TestResolve_DecemberEndsInNextYear() {
	r, err := s.resolver.Resolve(s.month(time.December, 2023))
	s.Require().NoError(err)

	s.Equal(time.Date(2023, time.December, 10, 0, 0, 0, 0, time.UTC), r.From)
	s.Equal(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), r.To)
}

func (s *TimePeriodResolverSuite) TestResolve_FebruaryWithLateStartDay() {
	resolver, err := NewTimePeriodResolver(28, nil)
	s.Require().NoError(err)

	r, err := resolver.Resolve(s.month(time.February, 2023))
	s.Require().NoError(err)

	s.Equal(time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), r.From)
	s.Equal(time.Date(2023, time.March, 28, 0, 0, 0, 0, time.UTC), r.To)
}

func (s *TimePeriodResolverSuite) TestResolve_MonthWithoutYearUsesCurrentYear() {
	month := time.January
	r, err := s.resolver.Resolve(models.TimePeriod{Month: &month})
	s.Require().NoError(err)

	s.Equal(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), r.From)
}

func (s *TimePeriodResolverSuite) TestResolve_YearIgnoresStartDay() {
	r, err := s.resolver.Resolve(models.NewYearPeriod(2024))
	s.Require().NoError(err)

	s.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), r.From)
	s.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), r.To)
}

func (s *TimePeriodResolverSuite) TestResolve_LastN() {
	tests := []struct {
		unit models.TimeUnit
		n    int
		from time.Time
	}{
		{models.TimeUnitDay, 3, time.Date(2026, time.June, 12, 13, 30, 0, 0, time.UTC)},
		{models.TimeUnitWeek, 2, time.Date(2026, time.June, 1, 13, 30, 0, 0, time.UTC)},
		{models.TimeUnitMonth, 6, time.Date(2025, time.December, 15, 13, 30, 0, 0, time.UTC)},
		{models.TimeUnitYear, 1, time.Date(2025, time.June, 15, 13, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		p, err := models.NewLastNPeriod(tt.n, tt.unit)
		s.Require().NoError(err)

		r, err := s.resolver.Resolve(p)
		s.Require().NoError(err)
		s.Equal(tt.from, r.From, string(tt.unit))
		s.Equal(s.now, r.To, string(tt.unit))
	}
}

func (s *TimePeriodResolverSuite) TestResolve_InvalidPeriod() {
	_, err := s.resolver.Resolve(models.TimePeriod{})
	s.ErrorIs(err, models.ErrInvalidPeriod)

	bad := time.Month(13)
	year := 2024
	_, err = s.resolver.Resolve(models.TimePeriod{Month: &bad, Year: &year})
	s.ErrorIs(err, models.ErrInvalidMonth)
}

func (s *TimePeriodResolverSuite) TestNext_YearRolloverOnMonthAdvance() {
	next := s.resolver.Next(s.month(time.December, 2023))

	s.Equal(models.PeriodVariantMonth, next.Variant())
	s.Equal(time.January, *next.Month)
	s.Equal(2024, *next.Year)
}

func (s *TimePeriodResolverSuite) TestPrevious_YearRolloverOnMonthRetreat() {
	prev := s.resolver.Previous(s.month(time.January, 2024))

	s.Equal(time.December, *prev.Month)
	s.Equal(2023, *prev.Year)
}

func (s *TimePeriodResolverSuite) TestNextAndPrevious_PreserveYearVariant() {
	next := s.resolver.Next(models.NewYearPeriod(2024))
	s.Equal(models.PeriodVariantYear, next.Variant())
	s.Equal(2025, *next.Year)

	prev := s.resolver.Previous(models.NewYearPeriod(2024))
	s.Equal(2023, *prev.Year)
}

func (s *TimePeriodResolverSuite) TestNextThenPrevious_IsIdentity() {
	start := s.month(time.July, 2025)
	s.Equal(start, s.resolver.Previous(s.resolver.Next(start)))
}
