package retro

import "github.com/shopspring/decimal"

type CreateAdjustmentRequest struct {
	EmployeeID    string          `json:"employee_id" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description" binding:"required,min=3"`
	EffectiveDate string          `json:"effective_date" binding:"required,datetime=2006-01-02"`
}

type AdjustmentResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	EffectiveDate string          `json:"effective_date"`
	Status        string          `json:"status"`
	PayrollRowID  string          `json:"payroll_row_id,omitempty"`
}
