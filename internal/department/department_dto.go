package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2"`
	Code string `json:"code" binding:"required,min=2,max=20"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2"`
	Code string `json:"code" binding:"required,min=2,max=20"`
}

type DepartmentResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
}
