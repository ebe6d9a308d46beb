package contribution

import "github.com/shopspring/decimal"

type UpdateProfileRequest struct {
	DeductionType    string          `json:"deduction_type" binding:"required,oneof=MONTHLY SEMI_MONTHLY"`
	SSSAmount        decimal.Decimal `json:"sss_amount"`
	PhilHealthAmount decimal.Decimal `json:"philhealth_amount"`
	PagIBIGAmount    decimal.Decimal `json:"pagibig_amount"`
}

type SetOverrideRequest struct {
	Field   string          `json:"field" binding:"required"`
	Enabled bool            `json:"enabled"`
	Amount  decimal.Decimal `json:"amount"`
}

type FieldResponse struct {
	Amount         decimal.Decimal `json:"amount"`
	Override       bool            `json:"override"`
	OverrideAmount decimal.Decimal `json:"override_amount"`
}

type ProfileResponse struct {
	ID            string        `json:"id"`
	EmployeeID    string        `json:"employee_id"`
	DeductionType string        `json:"deduction_type"`
	SSS           FieldResponse `json:"sss"`
	PhilHealth    FieldResponse `json:"philhealth"`
	PagIBIG       FieldResponse `json:"pagibig"`
}
