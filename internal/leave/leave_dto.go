package leave

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TruthyBool accepts the bool plus the legacy string/number encodings
// ("1", "true", 1) that older clients still send for is_paid.
type TruthyBool bool

func (t *TruthyBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch string(data) {
	case "true", `"true"`, `"1"`, "1":
		*t = true
		return nil
	case "false", `"false"`, `"0"`, "0", "null", `""`:
		*t = false
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*t = TruthyBool(b)
	return nil
}

type CreateLeaveRequest struct {
	EmployeeID string     `json:"employee_id" binding:"required,uuid"`
	LeaveType  string     `json:"leave_type" binding:"required,min=2"`
	IsPaid     TruthyBool `json:"is_paid"`
	DateFrom   string     `json:"date_from" binding:"required,datetime=2006-01-02"`
	DateUntil  string     `json:"date_until" binding:"required,datetime=2006-01-02"`
	Reason     string     `json:"reason"`
}

type DecideLeaveRequest struct {
	Approve bool `json:"approve"`
}

type LeaveResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	IsPaid     bool   `json:"is_paid"`
	DateFrom   string `json:"date_from"`
	DateUntil  string `json:"date_until"`
	Reason     string `json:"reason,omitempty"`
	Status     string `json:"status"`
}

type PaidDaysResponse struct {
	EmployeeID   string          `json:"employee_id"`
	DateFrom     string          `json:"date_from"`
	DateUntil    string          `json:"date_until"`
	PaidLeaveDay decimal.Decimal `json:"paid_leave_days"`
}
