package events

import "time"

const PayrollRecomputedTopic = "hr.payroll.recomputed.v1"

// PayrollRecomputedEvent announces that a payroll row's derived figures
// changed. Callers that mutated the row already hold the fresh copy from
// the response; this event exists for other processes and views only.
type PayrollRecomputedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	DateFrom   string    `json:"date_from"`
	DateUntil  string    `json:"date_until"`
	NetPay     string    `json:"net_pay"`
	OccurredAt time.Time `json:"occurred_at"`
}
