package tracking

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

func TestErrorCreateCanonicalizesCategory(t *testing.T) {
	repo := new(MockRecordRepository[tracking.ProductionError])
	recorder := &MockRecorder{}
	svc := NewErrorService(repo, recorder)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*tracking.ProductionError")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*tracking.ProductionError).ID = 8
		}).
		Return(nil)

	resp, err := svc.Create(context.Background(), CreateErrorRequest{
		Date:        "2025-03-12",
		Sector:      "Salgados",
		Product:     "Coxinha",
		Category:    "Produção",
		Description: "Recheio fora da proporção",
		Cost:        ptr(120.5),
	})
	require.NoError(t, err)

	assert.Equal(t, tracking.SectorSalgado, resp.Sector)
	assert.Equal(t, "PRODUCAO", resp.Category)
	assert.InDelta(t, 120.5, resp.Cost, 0.0001)
	require.Len(t, recorder.entries, 1)
	assert.Equal(t, audit.ActionCreateRecord, recorder.entries[0].Action)
}

func TestErrorCreateRejectsNegativeCost(t *testing.T) {
	repo := new(MockRecordRepository[tracking.ProductionError])
	svc := NewErrorService(repo, &MockRecorder{})

	_, err := svc.Create(context.Background(), CreateErrorRequest{
		Date:        "2025-03-12",
		Sector:      "SALGADO",
		Product:     "Coxinha",
		Category:    "QUALIDADE",
		Description: "Desc",
		Cost:        ptr(-1.0),
	})

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestErrorRemoveKeepsSnapshot(t *testing.T) {
	repo := new(MockRecordRepository[tracking.ProductionError])
	recorder := &MockRecorder{}
	svc := NewErrorService(repo, recorder)

	existing := &tracking.ProductionError{
		ID:       8,
		Sector:   tracking.SectorSalgado,
		Product:  "Coxinha",
		Category: "PRODUCAO",
		Cost:     decimal.NewFromFloat(120.5),
	}
	repo.On("FindByID", mock.Anything, uint(8)).Return(existing, nil)
	repo.On("Delete", mock.Anything, uint(8)).Return(nil)

	require.NoError(t, svc.Remove(context.Background(), 8))

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, audit.ActionDeleteRecord, entry.Action)
	assert.Equal(t, tracking.EntityError, entry.EntityType)
	assert.Equal(t, "Coxinha", entry.Detail["product"])
	assert.InDelta(t, 120.5, entry.Detail["cost"].(float64), 0.0001)
}
