package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	FirstName       string          `json:"first_name" binding:"required,min=1"`
	LastName        string          `json:"last_name" binding:"required,min=1"`
	DepartmentID    string          `json:"department_id" binding:"required,uuid"`
	PositionID      string          `json:"position_id" binding:"required,uuid"`
	EmployeeType    string          `json:"employee_type" binding:"required"`
	SalaryType      string          `json:"salary_type" binding:"required"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
	MonthlyRate     decimal.Decimal `json:"monthly_rate"`
	CommissionBased bool            `json:"commission_based"`
	HiredAt         string          `json:"hired_at" binding:"required,datetime=2006-01-02"`
}

type UpdateEmployeeRequest struct {
	FirstName       string          `json:"first_name" binding:"required,min=1"`
	LastName        string          `json:"last_name" binding:"required,min=1"`
	DepartmentID    string          `json:"department_id" binding:"required,uuid"`
	PositionID      string          `json:"position_id" binding:"required,uuid"`
	EmployeeType    string          `json:"employee_type" binding:"required"`
	SalaryType      string          `json:"salary_type" binding:"required"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
	MonthlyRate     decimal.Decimal `json:"monthly_rate"`
	CommissionBased bool            `json:"commission_based"`
	Status          string          `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

type EmployeeResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	EmployeeNumber  string          `json:"employee_number"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	DepartmentID    string          `json:"department_id"`
	PositionID      string          `json:"position_id"`
	EmployeeType    string          `json:"employee_type"`
	SalaryType      string          `json:"salary_type"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
	MonthlyRate     decimal.Decimal `json:"monthly_rate"`
	CommissionBased bool            `json:"commission_based"`
	Status          string          `json:"status"`
	HiredAt         string          `json:"hired_at"`
}

// EmployeeOption is the lightweight shape served to dropdowns and pickers.
type EmployeeOption struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	DepartmentID   string `json:"department_id"`
	PositionID     string `json:"position_id"`
}

type ListEmployeesQuery struct {
	Page         int    `form:"page,default=1" binding:"gte=1"`
	PageSize     int    `form:"page_size,default=20" binding:"gte=1,lte=100"`
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	Status       string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Search       string `form:"search"`
}
