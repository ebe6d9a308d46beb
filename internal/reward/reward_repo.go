package reward

import (
	"context"
	"time"

	"centraljuan-hris/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	CreateRule(ctx context.Context, rule *Rule) error
	FindRules(ctx context.Context, companyID string) ([]Rule, error)
	DeleteRule(ctx context.Context, companyID, id string) error
	CreateEntry(ctx context.Context, entry *JournalEntry) error
	FindEntries(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]JournalEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRule(ctx context.Context, rule *Rule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repository) FindRules(ctx context.Context, companyID string) ([]Rule, error) {
	var rules []Rule
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	return rules, err
}

func (r *repository) DeleteRule(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Rule{}, "id = ?", id).Error
}

func (r *repository) CreateEntry(ctx context.Context, entry *JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindEntries(ctx context.Context, companyID, employeeID string, from, until time.Time) ([]JournalEntry, error) {
	var entries []JournalEntry
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("cutoff_from >= ? AND cutoff_until <= ?", from, until).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
