package tracking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
)

// MockRecordRepository is a mock implementation of shared.RecordRepository
type MockRecordRepository[T any] struct {
	mock.Mock
}

func (m *MockRecordRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRecordRepository[T]) FindPage(ctx context.Context, filter shared.Filter) ([]T, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]T), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecordRepository[T]) Create(ctx context.Context, record *T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository[T]) Update(ctx context.Context, id uint, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockRecordRepository[T]) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecorder captures audit entries for assertions
type MockRecorder struct {
	entries []*audit.Entry
	err     error
}

func (r *MockRecorder) Record(_ context.Context, entry *audit.Entry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
