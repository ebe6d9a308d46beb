package leave

import (
	"net/http"
	"time"

	"centraljuan-hris/internal/shared/apperror"
	"centraljuan-hris/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	resp, err := h.service.GetByEmployee(c.Request.Context(), c.GetString("company_id"), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Decide(c *gin.Context) {
	var req DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PaidDays(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("date_from"))
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("date_from"))
		return
	}
	until, err := time.Parse("2006-01-02", c.Query("date_until"))
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("date_until"))
		return
	}

	days, err := h.service.PaidDaysInCutoff(c.Request.Context(), c.GetString("company_id"), c.Param("employeeId"), from, until)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PaidDaysResponse{
		EmployeeID:   c.Param("employeeId"),
		DateFrom:     from.Format("2006-01-02"),
		DateUntil:    until.Format("2006-01-02"),
		PaidLeaveDay: days,
	}, nil)
}
