package tracking

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Loss records discarded product or raw material and its cost. Soft-deleted.
type Loss struct {
	ID        uint            `gorm:"primaryKey"`
	Date      Date            `gorm:"type:date;not null;index:idx_losses_date"`
	Sector    string          `gorm:"type:varchar(30);not null;index"`
	Product   string          `gorm:"type:varchar(200);not null"`
	LossType  string          `gorm:"type:varchar(30);not null"`
	Quantity  decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Unit      string          `gorm:"type:varchar(20);not null"`
	UnitCost  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalCost decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason    *string         `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for GORM
func (Loss) TableName() string {
	return "losses"
}

// AuditSnapshot returns the identifying fields captured before deletion
func (l *Loss) AuditSnapshot() map[string]any {
	return map[string]any{
		"date":       l.Date.String(),
		"sector":     l.Sector,
		"product":    l.Product,
		"loss_type":  l.LossType,
		"quantity":   l.Quantity.InexactFloat64(),
		"total_cost": l.TotalCost.InexactFloat64(),
	}
}
