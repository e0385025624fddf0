package persistence

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
)

// GormAuditRepository is the GORM implementation of audit.Repository.
// The table is append-only; there is no update or delete path.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new audit repository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append persists one audit entry
func (r *GormAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindPage returns one page of entries, newest first, plus the total count
func (r *GormAuditRepository) FindPage(ctx context.Context, filter shared.Filter) ([]audit.Entry, int64, error) {
	var (
		entries []audit.Entry
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Order("created_at DESC, id DESC").
			Offset(filter.Offset()).
			Limit(filter.PageSize).
			Find(&entries).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&audit.Entry{}).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
