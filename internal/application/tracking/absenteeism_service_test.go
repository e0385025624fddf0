package tracking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

func TestAbsenteeismCreateCanonicalizesLabels(t *testing.T) {
	repo := new(MockRecordRepository[tracking.Absenteeism])
	recorder := &MockRecorder{}
	svc := NewAbsenteeismService(repo, recorder)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*tracking.Absenteeism")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*tracking.Absenteeism).ID = 10
		}).
		Return(nil)

	resp, err := svc.Create(context.Background(), CreateAbsenteeismRequest{
		EmployeeName: "  Carlos Lima  ",
		Date:         "2025-03-10",
		Sector:       "Pães",
		AbsenceType:  "Atestado Médico",
		DaysAbsent:   ptr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(10), resp.ID)
	assert.Equal(t, "Carlos Lima", resp.EmployeeName)
	assert.Equal(t, tracking.SectorPaes, resp.Sector)
	assert.Equal(t, "ATESTADO", resp.AbsenceType)
	assert.Equal(t, "2025-03-10", resp.Date.String())

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, audit.ActionCreateRecord, entry.Action)
	assert.Equal(t, tracking.EntityAbsenteeism, entry.EntityType)
	assert.Equal(t, uint(10), entry.EntityID)
	assert.Equal(t, "ATESTADO", entry.Detail["absence_type"])
	repo.AssertExpectations(t)
}

func TestAbsenteeismCreateRejectsBadInput(t *testing.T) {
	repo := new(MockRecordRepository[tracking.Absenteeism])
	recorder := &MockRecorder{}
	svc := NewAbsenteeismService(repo, recorder)

	_, err := svc.Create(context.Background(), CreateAbsenteeismRequest{
		EmployeeName: "Carlos Lima",
		Date:         "10/03/2025",
		Sector:       "Açougue",
		AbsenceType:  "FALTA_INJUSTIFICADA",
		DaysAbsent:   ptr(0),
	})

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "sector")
	assert.Contains(t, fields, "daysAbsent")
	assert.Contains(t, fields["sector"], tracking.SectorPaes)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, recorder.entries)
}

func TestAbsenteeismUpdate(t *testing.T) {
	repo := new(MockRecordRepository[tracking.Absenteeism])
	recorder := &MockRecorder{}
	svc := NewAbsenteeismService(repo, recorder)

	existing := &tracking.Absenteeism{ID: 5, EmployeeName: "Carlos Lima", DaysAbsent: 2}
	repo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
	repo.On("Update", mock.Anything, uint(5), map[string]any{"days_absent": 3}).Return(nil)

	_, err := svc.Update(context.Background(), 5, UpdateAbsenteeismRequest{DaysAbsent: ptr(3)})
	require.NoError(t, err)

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, audit.ActionUpdateRecord, recorder.entries[0].Action)
	assert.Equal(t, 3, recorder.entries[0].Detail["days_absent"])
	repo.AssertExpectations(t)
}

func TestAbsenteeismUpdateNoChanges(t *testing.T) {
	repo := new(MockRecordRepository[tracking.Absenteeism])
	recorder := &MockRecorder{}
	svc := NewAbsenteeismService(repo, recorder)

	repo.On("FindByID", mock.Anything, uint(5)).Return(&tracking.Absenteeism{ID: 5}, nil)

	_, err := svc.Update(context.Background(), 5, UpdateAbsenteeismRequest{})
	require.NoError(t, err)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, recorder.entries)
}

func TestAbsenteeismUpdateMissing(t *testing.T) {
	repo := new(MockRecordRepository[tracking.Absenteeism])
	recorder := &MockRecorder{}
	svc := NewAbsenteeismService(repo, recorder)

	repo.On("FindByID", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), 99, UpdateAbsenteeismRequest{DaysAbsent: ptr(3)})
	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAbsenteeismRemove(t *testing.T) {
	repo := new(MockRecordRepository[tracking.Absenteeism])
	recorder := &MockRecorder{}
	svc := NewAbsenteeismService(repo, recorder)

	existing := &tracking.Absenteeism{
		ID:           5,
		EmployeeName: "Carlos Lima",
		AbsenceType:  "FALTA_INJUSTIFICADA",
		DaysAbsent:   2,
	}
	repo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
	repo.On("Delete", mock.Anything, uint(5)).Return(nil)

	require.NoError(t, svc.Remove(context.Background(), 5))

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, audit.ActionDeleteRecord, entry.Action)
	assert.Equal(t, "Carlos Lima", entry.Detail["employee_name"])
	assert.Equal(t, 2, entry.Detail["days_absent"])
	repo.AssertExpectations(t)
}

func TestAbsenteeismRemoveMissing(t *testing.T) {
	repo := new(MockRecordRepository[tracking.Absenteeism])
	recorder := &MockRecorder{}
	svc := NewAbsenteeismService(repo, recorder)

	repo.On("FindByID", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)

	assert.ErrorIs(t, svc.Remove(context.Background(), 99), shared.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	assert.Empty(t, recorder.entries)
}

func TestAbsenteeismRemoveSucceedsWhenAuditFails(t *testing.T) {
	repo := new(MockRecordRepository[tracking.Absenteeism])
	recorder := &MockRecorder{err: errors.New("trail unavailable")}
	svc := NewAbsenteeismService(repo, recorder)

	repo.On("FindByID", mock.Anything, uint(5)).Return(&tracking.Absenteeism{ID: 5}, nil)
	repo.On("Delete", mock.Anything, uint(5)).Return(nil)

	assert.NoError(t, svc.Remove(context.Background(), 5))
}

func TestAbsenteeismList(t *testing.T) {
	repo := new(MockRecordRepository[tracking.Absenteeism])
	svc := NewAbsenteeismService(repo, &MockRecorder{})

	records := []tracking.Absenteeism{{ID: 1, EmployeeName: "Carlos"}, {ID: 2, EmployeeName: "Maria"}}
	repo.On("FindPage", mock.Anything, shared.Filter{Page: 1, PageSize: 20}).
		Return(records, int64(45), nil)

	page, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(45), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Carlos", page.Items[0].EmployeeName)
}

func TestAbsenteeismListClampsPageSize(t *testing.T) {
	repo := new(MockRecordRepository[tracking.Absenteeism])
	svc := NewAbsenteeismService(repo, &MockRecorder{})

	repo.On("FindPage", mock.Anything, shared.Filter{Page: 1, PageSize: 100}).
		Return([]tracking.Absenteeism{}, int64(0), nil)

	_, err := svc.List(context.Background(), 1, 5000)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
