package tracking

import (
	"context"
	"strings"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

// AbsenteeismService handles absence-record business operations
type AbsenteeismService struct {
	repo     shared.RecordRepository[tracking.Absenteeism]
	recorder audit.Recorder
}

// NewAbsenteeismService creates a new AbsenteeismService
func NewAbsenteeismService(repo shared.RecordRepository[tracking.Absenteeism], recorder audit.Recorder) *AbsenteeismService {
	return &AbsenteeismService{repo: repo, recorder: recorder}
}

// List returns one page of absence records
func (s *AbsenteeismService) List(ctx context.Context, page, pageSize int) (*shared.Paginated[AbsenteeismResponse], error) {
	return listPage(ctx, s.repo, page, pageSize, toAbsenteeismResponse)
}

// GetByID returns one absence record
func (s *AbsenteeismService) GetByID(ctx context.Context, id uint) (*AbsenteeismResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toAbsenteeismResponse(record)
	return &resp, nil
}

// Create validates and persists a new absence record
func (s *AbsenteeismService) Create(ctx context.Context, req CreateAbsenteeismRequest) (*AbsenteeismResponse, error) {
	var v collector
	record := tracking.Absenteeism{
		EmployeeName: strings.TrimSpace(req.EmployeeName),
		Date:         v.date("date", req.Date),
		Sector:       v.enum("sector", req.Sector, tracking.Sectors),
		AbsenceType:  v.enum("absenceType", req.AbsenceType, tracking.AbsenceTypes),
		DaysAbsent:   v.positiveInt("daysAbsent", *req.DaysAbsent),
		Notes:        optionalText(req.Notes),
	}
	if err := v.result(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.recorder, audit.ActionCreateRecord, tracking.EntityAbsenteeism, record.ID, audit.Detail{
		"employee_name": record.EmployeeName,
		"date":          record.Date.String(),
		"sector":        record.Sector,
		"absence_type":  record.AbsenceType,
		"days_absent":   record.DaysAbsent,
	})

	resp := toAbsenteeismResponse(&record)
	return &resp, nil
}

// Update applies a partial update to an absence record
func (s *AbsenteeismService) Update(ctx context.Context, id uint, req UpdateAbsenteeismRequest) (*AbsenteeismResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	var v collector
	fields := map[string]any{}
	if req.EmployeeName != nil {
		fields["employee_name"] = strings.TrimSpace(*req.EmployeeName)
	}
	if req.Date != nil {
		fields["date"] = v.date("date", *req.Date)
	}
	if req.Sector != nil {
		fields["sector"] = v.enum("sector", *req.Sector, tracking.Sectors)
	}
	if req.AbsenceType != nil {
		fields["absence_type"] = v.enum("absenceType", *req.AbsenceType, tracking.AbsenceTypes)
	}
	if req.DaysAbsent != nil {
		fields["days_absent"] = v.positiveInt("daysAbsent", *req.DaysAbsent)
	}
	if req.Notes != nil {
		fields["notes"] = optionalText(req.Notes)
	}
	if err := v.result(); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
		recordAudit(ctx, s.recorder, audit.ActionUpdateRecord, tracking.EntityAbsenteeism, id, auditDetailFromFields(fields))
	}

	return s.GetByID(ctx, id)
}

// Remove soft-deletes an absence record, keeping an identifying snapshot in
// the audit trail.
func (s *AbsenteeismService) Remove(ctx context.Context, id uint) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.recorder, audit.ActionDeleteRecord, tracking.EntityAbsenteeism, id, audit.Detail(record.AuditSnapshot()))
	return nil
}

func toAbsenteeismResponse(r *tracking.Absenteeism) AbsenteeismResponse {
	return AbsenteeismResponse{
		ID:           r.ID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date,
		Sector:       r.Sector,
		AbsenceType:  r.AbsenceType,
		DaysAbsent:   r.DaysAbsent,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
