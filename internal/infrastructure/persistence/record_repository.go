package persistence

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/producao/backend/internal/domain/shared"
)

// GormRecordRepository is the GORM implementation of shared.RecordRepository.
// One instance serves one tracked-record table; the ordering expression is
// fixed per entity so pages are deterministic.
//
// Soft-delete filtering is not implemented here: models carrying a
// gorm.DeletedAt column get the `deleted_at IS NULL` guard on every query and
// a timestamp write on Delete, while models without the column are physically
// deleted. The per-entity retention policy lives entirely in the model shape.
type GormRecordRepository[T any] struct {
	db    *gorm.DB
	order string
}

// NewGormRecordRepository creates a repository for one record type.
// order is the SQL ordering expression, e.g. "date DESC, sector ASC, id ASC".
func NewGormRecordRepository[T any](db *gorm.DB, order string) *GormRecordRepository[T] {
	return &GormRecordRepository[T]{db: db, order: order}
}

// FindByID returns one active record, or shared.ErrNotFound. A soft-deleted
// record is indistinguishable from an absent one.
func (r *GormRecordRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindPage returns one page of active records plus the total active count.
// The page fetch and the count are commutative reads against the same filter,
// so they run concurrently.
func (r *GormRecordRepository[T]) FindPage(ctx context.Context, filter shared.Filter) ([]T, int64, error) {
	var (
		records []T
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(new(T)).
			Order(r.order).
			Offset(filter.Offset()).
			Limit(filter.PageSize).
			Find(&records).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(new(T)).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Create persists a new record; the database assigns its ID
func (r *GormRecordRepository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update applies a partial field update to an active record.
// Zero rows affected means the record vanished (or was soft-deleted) since
// the caller's existence check, which reports as NotFound.
func (r *GormRecordRepository[T]) Update(ctx context.Context, id uint, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a record: a deleted_at stamp for soft-delete models, a
// physical DELETE otherwise.
func (r *GormRecordRepository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
