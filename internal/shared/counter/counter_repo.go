package counter

import (
	"context"

	"gorm.io/gorm"
)

// Repository hands out gapless-enough sequence values per company and
// counter type. Employee numbering is the only caller today.
type Repository interface {
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetNextValue increments and returns the counter in a single upsert, so
// two concurrent employee creations can never draw the same number.
func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	const query = `
		INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (company_id, counter_type) DO UPDATE
		SET last_value = company_counters.last_value + 1, updated_at = now()
		RETURNING last_value`

	var next int64
	if err := r.db.WithContext(ctx).Raw(query, companyID, counterType).Scan(&next).Error; err != nil {
		return 0, err
	}
	return next, nil
}
