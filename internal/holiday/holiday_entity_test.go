package holiday_test

import (
	"testing"
	"time"

	"centraljuan-hris/internal/holiday"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func ptr(t time.Time) *time.Time { return &t }

func TestHoliday_DaysInRange(t *testing.T) {
	t.Run("single day inside window", func(t *testing.T) {
		h := holiday.Holiday{HolidayDate: day("2026-04-09")}
		assert.Equal(t, 1, h.DaysInRange(day("2026-04-01"), day("2026-04-15")))
	})

	t.Run("single day outside window", func(t *testing.T) {
		h := holiday.Holiday{HolidayDate: day("2026-04-09")}
		assert.Equal(t, 0, h.DaysInRange(day("2026-04-16"), day("2026-04-30")))
	})

	t.Run("extended holiday counts each day", func(t *testing.T) {
		h := holiday.Holiday{
			HolidayDate:   day("2026-04-09"),
			ExtendedUntil: ptr(day("2026-04-11")),
		}
		assert.Equal(t, 3, h.DaysInRange(day("2026-04-01"), day("2026-04-15")))
	})

	t.Run("extended holiday clipped at window edge", func(t *testing.T) {
		h := holiday.Holiday{
			HolidayDate:   day("2026-04-14"),
			ExtendedUntil: ptr(day("2026-04-17")),
		}
		assert.Equal(t, 2, h.DaysInRange(day("2026-04-01"), day("2026-04-15")))
	})

	t.Run("recurring matches the window year", func(t *testing.T) {
		h := holiday.Holiday{HolidayDate: day("2020-12-25"), IsRecurring: true}
		assert.Equal(t, 1, h.DaysInRange(day("2026-12-16"), day("2026-12-31")))
	})

	t.Run("recurring spanning a year boundary matches both years", func(t *testing.T) {
		h := holiday.Holiday{HolidayDate: day("2020-01-01"), IsRecurring: true}
		assert.Equal(t, 1, h.DaysInRange(day("2026-12-16"), day("2027-01-15")))

		xmas := holiday.Holiday{HolidayDate: day("2020-12-25"), IsRecurring: true}
		assert.Equal(t, 1, xmas.DaysInRange(day("2026-12-16"), day("2027-01-15")))
	})

	t.Run("recurring extended keeps the span length", func(t *testing.T) {
		h := holiday.Holiday{
			HolidayDate:   day("2020-12-24"),
			ExtendedUntil: ptr(day("2020-12-26")),
			IsRecurring:   true,
		}
		assert.Equal(t, 3, h.DaysInRange(day("2026-12-01"), day("2026-12-31")))
	})
}

func TestCountInRange(t *testing.T) {
	holidays := []holiday.Holiday{
		{HolidayDate: day("2026-04-09")},
		{HolidayDate: day("2020-04-10"), IsRecurring: true},
		{HolidayDate: day("2026-05-01")},
	}

	assert.Equal(t, 2, holiday.CountInRange(holidays, day("2026-04-01"), day("2026-04-15")))
	assert.Equal(t, 3, holiday.CountInRange(holidays, day("2026-04-01"), day("2026-05-15")))
	assert.Equal(t, 0, holiday.CountInRange(nil, day("2026-04-01"), day("2026-04-15")))
}
