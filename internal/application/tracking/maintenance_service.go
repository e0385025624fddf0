package tracking

import (
	"context"
	"strings"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

// MaintenanceService handles maintenance-event business operations
type MaintenanceService struct {
	repo     shared.RecordRepository[tracking.MaintenanceEvent]
	recorder audit.Recorder
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(repo shared.RecordRepository[tracking.MaintenanceEvent], recorder audit.Recorder) *MaintenanceService {
	return &MaintenanceService{repo: repo, recorder: recorder}
}

// List returns one page of maintenance events
func (s *MaintenanceService) List(ctx context.Context, page, pageSize int) (*shared.Paginated[MaintenanceResponse], error) {
	return listPage(ctx, s.repo, page, pageSize, toMaintenanceResponse)
}

// GetByID returns one maintenance event
func (s *MaintenanceService) GetByID(ctx context.Context, id uint) (*MaintenanceResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toMaintenanceResponse(record)
	return &resp, nil
}

// Create validates and persists a new maintenance event
func (s *MaintenanceService) Create(ctx context.Context, req CreateMaintenanceRequest) (*MaintenanceResponse, error) {
	var v collector
	record := tracking.MaintenanceEvent{
		Date:            v.date("date", req.Date),
		Sector:          v.enum("sector", req.Sector, tracking.Sectors),
		Machine:         strings.TrimSpace(req.Machine),
		MaintenanceType: v.enum("maintenanceType", req.MaintenanceType, tracking.MaintenanceTypes),
		Description:     strings.TrimSpace(req.Description),
		DowntimeMinutes: v.nonNegativeInt("downtimeMinutes", *req.DowntimeMinutes),
		Cost:            v.nonNegativeNumber("cost", *req.Cost),
		Technician:      optionalText(req.Technician),
	}
	if err := v.result(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.recorder, audit.ActionCreateRecord, tracking.EntityMaintenance, record.ID, audit.Detail{
		"date":             record.Date.String(),
		"sector":           record.Sector,
		"machine":          record.Machine,
		"maintenance_type": record.MaintenanceType,
		"downtime_minutes": record.DowntimeMinutes,
		"cost":             record.Cost.InexactFloat64(),
	})

	resp := toMaintenanceResponse(&record)
	return &resp, nil
}

// Update applies a partial update to a maintenance event
func (s *MaintenanceService) Update(ctx context.Context, id uint, req UpdateMaintenanceRequest) (*MaintenanceResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	var v collector
	fields := map[string]any{}
	if req.Date != nil {
		fields["date"] = v.date("date", *req.Date)
	}
	if req.Sector != nil {
		fields["sector"] = v.enum("sector", *req.Sector, tracking.Sectors)
	}
	if req.Machine != nil {
		fields["machine"] = strings.TrimSpace(*req.Machine)
	}
	if req.MaintenanceType != nil {
		fields["maintenance_type"] = v.enum("maintenanceType", *req.MaintenanceType, tracking.MaintenanceTypes)
	}
	if req.Description != nil {
		fields["description"] = strings.TrimSpace(*req.Description)
	}
	if req.DowntimeMinutes != nil {
		fields["downtime_minutes"] = v.nonNegativeInt("downtimeMinutes", *req.DowntimeMinutes)
	}
	if req.Cost != nil {
		fields["cost"] = v.nonNegativeNumber("cost", *req.Cost)
	}
	if req.Technician != nil {
		fields["technician"] = optionalText(req.Technician)
	}
	if err := v.result(); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
		recordAudit(ctx, s.recorder, audit.ActionUpdateRecord, tracking.EntityMaintenance, id, auditDetailFromFields(fields))
	}

	return s.GetByID(ctx, id)
}

// Remove soft-deletes a maintenance event, keeping an identifying snapshot in
// the audit trail.
func (s *MaintenanceService) Remove(ctx context.Context, id uint) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.recorder, audit.ActionDeleteRecord, tracking.EntityMaintenance, id, audit.Detail(record.AuditSnapshot()))
	return nil
}

func toMaintenanceResponse(r *tracking.MaintenanceEvent) MaintenanceResponse {
	return MaintenanceResponse{
		ID:              r.ID,
		Date:            r.Date,
		Sector:          r.Sector,
		Machine:         r.Machine,
		MaintenanceType: r.MaintenanceType,
		Description:     r.Description,
		DowntimeMinutes: r.DowntimeMinutes,
		Cost:            r.Cost.InexactFloat64(),
		Technician:      r.Technician,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
