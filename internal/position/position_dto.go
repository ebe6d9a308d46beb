package position

import "github.com/shopspring/decimal"

type CreatePositionRequest struct {
	DepartmentID     string          `json:"department_id" binding:"required,uuid"`
	Name             string          `json:"name" binding:"required,min=2"`
	DefaultDailyRate decimal.Decimal `json:"default_daily_rate"`
}

type UpdatePositionRequest struct {
	DepartmentID     string          `json:"department_id" binding:"required,uuid"`
	Name             string          `json:"name" binding:"required,min=2"`
	DefaultDailyRate decimal.Decimal `json:"default_daily_rate"`
}

type PositionResponse struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"company_id"`
	DepartmentID     string          `json:"department_id"`
	Name             string          `json:"name"`
	DefaultDailyRate decimal.Decimal `json:"default_daily_rate"`
}
