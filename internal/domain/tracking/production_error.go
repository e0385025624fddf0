package tracking

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionError records a production mistake and its cost impact.
// Unlike the other tracked records this entity is HARD deleted: there is no
// deleted_at column and Remove issues a physical delete. The pre-deletion
// snapshot in the audit trail is the only retained evidence.
type ProductionError struct {
	ID          uint            `gorm:"primaryKey"`
	Date        Date            `gorm:"type:date;not null;index:idx_errors_date"`
	Sector      string          `gorm:"type:varchar(30);not null;index"`
	Product     string          `gorm:"type:varchar(200);not null"`
	Category    string          `gorm:"type:varchar(30);not null"`
	Description string          `gorm:"type:text;not null"`
	Cost        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (ProductionError) TableName() string {
	return "production_errors"
}

// AuditSnapshot returns the identifying fields captured before deletion
func (e *ProductionError) AuditSnapshot() map[string]any {
	return map[string]any{
		"date":     e.Date.String(),
		"sector":   e.Sector,
		"product":  e.Product,
		"category": e.Category,
		"cost":     e.Cost.InexactFloat64(),
	}
}
