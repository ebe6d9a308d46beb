package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Record is one employee-day. A rest day never has a Record; an absence has
// NetWorkMinutes > 0 with ActualRenderedMinutes == 0.
type Record struct {
	ID                    uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID             uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID            uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:idx_attendance_employee_day"`
	WorkDate              time.Time       `gorm:"column:work_date;type:date;not null;uniqueIndex:idx_attendance_employee_day"`
	MorningIn             string          `gorm:"column:morning_in;type:varchar(8)"`
	MorningOut            string          `gorm:"column:morning_out;type:varchar(8)"`
	AfternoonIn           string          `gorm:"column:afternoon_in;type:varchar(8)"`
	AfternoonOut          string          `gorm:"column:afternoon_out;type:varchar(8)"`
	DaysCredited          decimal.Decimal `gorm:"column:days_credited;type:numeric(6,2);not null;default:0"`
	OvertimeHours         decimal.Decimal `gorm:"column:overtime_hours;type:numeric(6,2);not null;default:0"`
	TotalRenderedHours    decimal.Decimal `gorm:"column:total_rendered_hours;type:numeric(6,2);not null;default:0"`
	NetWorkMinutes        int             `gorm:"column:net_work_minutes;not null;default:0"`
	ActualRenderedMinutes int             `gorm:"column:actual_rendered_minutes;not null;default:0"`
	LateMinutes           int             `gorm:"column:late_minutes;not null;default:0"`
	ScheduleStart         string          `gorm:"column:schedule_start;type:varchar(8)"`
	ScheduleEnd           string          `gorm:"column:schedule_end;type:varchar(8)"`
	ScheduleTotalMinutes  int             `gorm:"column:schedule_total_minutes;not null;default:0"`
	IsRestDay             bool            `gorm:"column:is_rest_day;not null;default:false"`
	CreatedAt             time.Time       `gorm:"column:created_at"`
	UpdatedAt             time.Time       `gorm:"column:updated_at"`
	DeletedAt             gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Record) TableName() string {
	return "attendance_records"
}

// IsAbsence reports a scheduled day with nothing rendered.
func (r Record) IsAbsence() bool {
	return !r.IsRestDay && r.NetWorkMinutes > 0 && r.ActualRenderedMinutes == 0
}
