package audit

import (
	"context"
	"time"

	"github.com/producao/backend/internal/domain/shared"
)

// Action codes recorded in the trail
const (
	ActionCreateRecord = "CREATE_RECORD"
	ActionUpdateRecord = "UPDATE_RECORD"
	ActionDeleteRecord = "DELETE_RECORD"
)

// Entry is one immutable audit-trail row. Entries are append-only: nothing
// in this system updates or deletes them, and the model intentionally has no
// UpdatedAt or DeletedAt columns.
type Entry struct {
	ID         uint      `gorm:"primaryKey"`
	ActorID    *uint     `gorm:"index"`
	Action     string    `gorm:"type:varchar(30);not null;index"`
	EntityType string    `gorm:"type:varchar(50);not null;index:idx_audit_entity"`
	EntityID   uint      `gorm:"not null;index:idx_audit_entity"`
	Detail     Detail    `gorm:"type:jsonb"`
	IPAddress  string    `gorm:"type:varchar(45)"`
	UserAgent  string    `gorm:"type:varchar(500)"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "audit_entries"
}

// Recorder appends entries to the trail. Implementations must never mutate
// existing rows. Write failures surface to the caller wrapped as
// ErrAuditWriteFailed so they can be reported without rolling back the
// already-committed business mutation.
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
}

// Repository provides append and read access to the trail
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	FindPage(ctx context.Context, filter shared.Filter) ([]Entry, int64, error)
}
