package tracking

import (
	"time"

	"gorm.io/gorm"
)

// Entity type names, shared by the authorization policy and the audit trail.
const (
	EntityAbsenteeism = "absenteeism"
	EntityLoss        = "losses"
	EntityError       = "errors"
	EntityProduction  = "production"
	EntityMaintenance = "maintenance"
)

// Absenteeism records one employee absence event. Soft-deleted; removed rows
// stay in the table with deleted_at set and never surface through queries.
type Absenteeism struct {
	ID           uint           `gorm:"primaryKey"`
	EmployeeName string         `gorm:"type:varchar(200);not null"`
	Date         Date           `gorm:"type:date;not null;index:idx_absenteeism_date"`
	Sector       string         `gorm:"type:varchar(30);not null;index"`
	AbsenceType  string         `gorm:"type:varchar(30);not null"`
	DaysAbsent   int            `gorm:"not null"`
	Notes        *string        `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (Absenteeism) TableName() string {
	return "absenteeism_records"
}

// AuditSnapshot returns the identifying fields captured in the audit trail
// before deletion. Deliberately a subset, not the full record.
func (a *Absenteeism) AuditSnapshot() map[string]any {
	return map[string]any{
		"employee_name": a.EmployeeName,
		"date":          a.Date.String(),
		"absence_type":  a.AbsenceType,
		"days_absent":   a.DaysAbsent,
	}
}
