package holiday

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Holiday struct {
	ID                uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID         uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	Name              string          `gorm:"column:name;type:varchar(120);not null"`
	HolidayDate       time.Time       `gorm:"column:holiday_date;type:date;not null"`
	DefaultMultiplier decimal.Decimal `gorm:"column:default_multiplier;type:numeric(5,2);not null;default:1"`
	OTMultiplier      decimal.Decimal `gorm:"column:ot_multiplier;type:numeric(5,2);not null;default:1"`
	IsRecurring       bool            `gorm:"column:is_recurring;not null;default:false"`
	ExtendedUntil     *time.Time      `gorm:"column:extended_until;type:date"`
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Holiday) TableName() string {
	return "holidays"
}

// DaysInRange counts the credit-eligible days this holiday contributes to an
// inclusive window. A recurring holiday matches its month/day in every year
// the window touches; extended_until stretches a holiday over several days.
func (h Holiday) DaysInRange(from, until time.Time) int {
	if from.After(until) {
		return 0
	}

	if h.IsRecurring {
		count := 0
		for year := from.Year(); year <= until.Year(); year++ {
			occurrence := time.Date(year, h.HolidayDate.Month(), h.HolidayDate.Day(), 0, 0, 0, 0, time.UTC)
			count += overlapDays(occurrence, h.spanEnd(occurrence), from, until)
		}
		return count
	}

	return overlapDays(h.HolidayDate, h.spanEnd(h.HolidayDate), from, until)
}

func (h Holiday) spanEnd(start time.Time) time.Time {
	if h.ExtendedUntil == nil {
		return start
	}
	// Recurring occurrences keep the original span length.
	span := h.ExtendedUntil.Sub(h.HolidayDate)
	if span <= 0 {
		return start
	}
	return start.Add(span)
}

func overlapDays(spanFrom, spanUntil, from, until time.Time) int {
	if spanFrom.Before(from) {
		spanFrom = from
	}
	if spanUntil.After(until) {
		spanUntil = until
	}
	if spanFrom.After(spanUntil) {
		return 0
	}
	return int(spanUntil.Sub(spanFrom).Hours()/24) + 1
}

// CountInRange totals credit-eligible holiday days across the calendar.
func CountInRange(holidays []Holiday, from, until time.Time) int {
	total := 0
	for _, h := range holidays {
		total += h.DaysInRange(from, until)
	}
	return total
}
