package loan

import "github.com/shopspring/decimal"

type CreateLoanRequest struct {
	EmployeeID        string          `json:"employee_id" binding:"required,uuid"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	DeductionSchedule string          `json:"deduction_schedule" binding:"required,oneof=MONTHLY SEMI_MONTHLY CURRENT_PAYROLL"`
	PayablePerTerm    decimal.Decimal `json:"payable_per_term"`
	Remarks           string          `json:"remarks"`
}

type LoanResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	Balance           decimal.Decimal `json:"balance"`
	DeductionSchedule string          `json:"deduction_schedule"`
	PayablePerTerm    decimal.Decimal `json:"payable_per_term"`
	Status            string          `json:"status"`
	Remarks           string          `json:"remarks,omitempty"`
}

type JournalEntryResponse struct {
	ID        string          `json:"id"`
	LoanID    string          `json:"loan_id"`
	EntryType string          `json:"entry_type"`
	Amount    decimal.Decimal `json:"amount"`
	EntryDate string          `json:"entry_date"`
	Note      string          `json:"note,omitempty"`
}

type CreateSkipRequest struct {
	CutoffFrom  string `json:"cutoff_from" binding:"required,datetime=2006-01-02"`
	CutoffUntil string `json:"cutoff_until" binding:"required,datetime=2006-01-02"`
	Reason      string `json:"reason" binding:"required,min=3"`
}

type SkipRequestResponse struct {
	ID          string `json:"id"`
	LoanID      string `json:"loan_id"`
	CutoffFrom  string `json:"cutoff_from"`
	CutoffUntil string `json:"cutoff_until"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}

type DecideSkipRequest struct {
	Approve bool `json:"approve"`
}

// BatchApplyRequest commits one repayment journal entry per selected loan.
// Amount overrides the schedule-derived figure when present.
type BatchApplyRequest struct {
	EntryDate string           `json:"entry_date" binding:"required,datetime=2006-01-02"`
	Items     []BatchApplyItem `json:"items" binding:"required,min=1,dive"`
}

type BatchApplyItem struct {
	LoanID string           `json:"loan_id" binding:"required,uuid"`
	Amount *decimal.Decimal `json:"amount"`
	Note   string           `json:"note"`
}

type BatchApplyResult struct {
	LoanID  string          `json:"loan_id"`
	Applied decimal.Decimal `json:"applied"`
	Balance decimal.Decimal `json:"balance"`
	Error   string          `json:"error,omitempty"`
}

type BatchApplySummary struct {
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Results   []BatchApplyResult `json:"results"`
}
