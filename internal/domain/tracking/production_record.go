package tracking

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductionRecord captures the output speed of one production run.
// UnitsPerHour is derived from quantity and duration at creation time so the
// dashboard never recomputes it. Soft-deleted.
type ProductionRecord struct {
	ID               uint            `gorm:"primaryKey"`
	Date             Date            `gorm:"type:date;not null;index:idx_production_date"`
	Sector           string          `gorm:"type:varchar(30);not null;index"`
	Product          string          `gorm:"type:varchar(200);not null"`
	Machine          string          `gorm:"type:varchar(100);not null"`
	QuantityProduced decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	DurationMinutes  int             `gorm:"not null"`
	UnitsPerHour     decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Operator         *string         `gorm:"type:varchar(200)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for GORM
func (ProductionRecord) TableName() string {
	return "production_records"
}

// ComputeUnitsPerHour derives the hourly rate from quantity and duration.
// Returns zero when duration is zero; the validator rejects that earlier.
func ComputeUnitsPerHour(quantity decimal.Decimal, durationMinutes int) decimal.Decimal {
	if durationMinutes <= 0 {
		return decimal.Zero
	}
	return quantity.Mul(decimal.NewFromInt(60)).
		Div(decimal.NewFromInt(int64(durationMinutes))).
		Round(3)
}

// AuditSnapshot returns the identifying fields captured before deletion
func (p *ProductionRecord) AuditSnapshot() map[string]any {
	return map[string]any{
		"date":              p.Date.String(),
		"sector":            p.Sector,
		"product":           p.Product,
		"machine":           p.Machine,
		"quantity_produced": p.QuantityProduced.InexactFloat64(),
	}
}
