package tracking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

func TestMaintenanceCreate(t *testing.T) {
	repo := new(MockRecordRepository[tracking.MaintenanceEvent])
	recorder := &MockRecorder{}
	svc := NewMaintenanceService(repo, recorder)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*tracking.MaintenanceEvent")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*tracking.MaintenanceEvent).ID = 4
		}).
		Return(nil)

	resp, err := svc.Create(context.Background(), CreateMaintenanceRequest{
		Date:            "2025-03-15",
		Sector:          "Manutenção",
		Machine:         "Forno rotativo",
		MaintenanceType: "Manutenção Corretiva",
		Description:     "Troca de resistência",
		DowntimeMinutes: ptr(90),
		Cost:            ptr(450.0),
	})
	require.NoError(t, err)

	assert.Equal(t, tracking.SectorManutencao, resp.Sector)
	assert.Equal(t, "CORRETIVA", resp.MaintenanceType)
	assert.Equal(t, 90, resp.DowntimeMinutes)
	require.Len(t, recorder.entries, 1)
}

func TestMaintenanceCreateAllowsZeroDowntime(t *testing.T) {
	repo := new(MockRecordRepository[tracking.MaintenanceEvent])
	svc := NewMaintenanceService(repo, &MockRecorder{})

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Create(context.Background(), CreateMaintenanceRequest{
		Date:            "2025-03-15",
		Sector:          "MANUTENCAO",
		Machine:         "Batedeira",
		MaintenanceType: "PREVENTIVA",
		Description:     "Inspeção de rotina",
		DowntimeMinutes: ptr(0),
		Cost:            ptr(0.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.DowntimeMinutes)
}

func TestMaintenanceCreateRejectsNegativeDowntime(t *testing.T) {
	repo := new(MockRecordRepository[tracking.MaintenanceEvent])
	svc := NewMaintenanceService(repo, &MockRecorder{})

	_, err := svc.Create(context.Background(), CreateMaintenanceRequest{
		Date:            "2025-03-15",
		Sector:          "MANUTENCAO",
		Machine:         "Batedeira",
		MaintenanceType: "PREVENTIVA",
		Description:     "Inspeção",
		DowntimeMinutes: ptr(-5),
		Cost:            ptr(10.0),
	})

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMaintenanceUpdateMissing(t *testing.T) {
	repo := new(MockRecordRepository[tracking.MaintenanceEvent])
	svc := NewMaintenanceService(repo, &MockRecorder{})

	repo.On("FindByID", mock.Anything, uint(77)).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), 77, UpdateMaintenanceRequest{Cost: ptr(10.0)})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
