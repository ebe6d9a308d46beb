package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	CompanyID    string    `json:"company_id"`
	EmployeeType string    `json:"employee_type"`
	OccurredAt   time.Time `json:"occurred_at"`
}
