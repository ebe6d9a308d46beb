package holiday

import "github.com/shopspring/decimal"

type CreateHolidayRequest struct {
	Name              string          `json:"name" binding:"required,min=2"`
	HolidayDate       string          `json:"holiday_date" binding:"required,datetime=2006-01-02"`
	DefaultMultiplier decimal.Decimal `json:"default_multiplier"`
	OTMultiplier      decimal.Decimal `json:"ot_multiplier"`
	IsRecurring       bool            `json:"is_recurring"`
	ExtendedUntil     string          `json:"extended_until" binding:"omitempty,datetime=2006-01-02"`
}

type HolidayResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	HolidayDate       string          `json:"holiday_date"`
	DefaultMultiplier decimal.Decimal `json:"default_multiplier"`
	OTMultiplier      decimal.Decimal `json:"ot_multiplier"`
	IsRecurring       bool            `json:"is_recurring"`
	ExtendedUntil     string          `json:"extended_until,omitempty"`
}

type CountQuery struct {
	DateFrom  string `form:"date_from" binding:"required,datetime=2006-01-02"`
	DateUntil string `form:"date_until" binding:"required,datetime=2006-01-02"`
}

type CountResponse struct {
	DateFrom  string `json:"date_from"`
	DateUntil string `json:"date_until"`
	Count     int    `json:"count"`
}
