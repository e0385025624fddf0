package tracking

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaintenanceEvent records planned or corrective machine maintenance and the
// production downtime it caused. Soft-deleted.
type MaintenanceEvent struct {
	ID              uint            `gorm:"primaryKey"`
	Date            Date            `gorm:"type:date;not null;index:idx_maintenance_date"`
	Sector          string          `gorm:"type:varchar(30);not null;index"`
	Machine         string          `gorm:"type:varchar(100);not null"`
	MaintenanceType string          `gorm:"type:varchar(30);not null"`
	Description     string          `gorm:"type:text;not null"`
	DowntimeMinutes int             `gorm:"not null"`
	Cost            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Technician      *string         `gorm:"type:varchar(200)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for GORM
func (MaintenanceEvent) TableName() string {
	return "maintenance_events"
}

// AuditSnapshot returns the identifying fields captured before deletion
func (m *MaintenanceEvent) AuditSnapshot() map[string]any {
	return map[string]any{
		"date":             m.Date.String(),
		"sector":           m.Sector,
		"machine":          m.Machine,
		"maintenance_type": m.MaintenanceType,
		"downtime_minutes": m.DowntimeMinutes,
	}
}
