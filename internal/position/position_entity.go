package position

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Position struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID        uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	DepartmentID     uuid.UUID       `gorm:"column:department_id;type:uuid;not null;index"`
	Name             string          `gorm:"column:name;type:varchar(120);not null"`
	DefaultDailyRate decimal.Decimal `gorm:"column:default_daily_rate;type:numeric(14,2);not null;default:0"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Position) TableName() string {
	return "positions"
}
