package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company. Every repository query that can
// touch company-owned rows must apply it.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
