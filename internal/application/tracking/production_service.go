package tracking

import (
	"context"
	"strings"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

// ProductionService handles production-speed business operations
type ProductionService struct {
	repo     shared.RecordRepository[tracking.ProductionRecord]
	recorder audit.Recorder
}

// NewProductionService creates a new ProductionService
func NewProductionService(repo shared.RecordRepository[tracking.ProductionRecord], recorder audit.Recorder) *ProductionService {
	return &ProductionService{repo: repo, recorder: recorder}
}

// List returns one page of production runs
func (s *ProductionService) List(ctx context.Context, page, pageSize int) (*shared.Paginated[ProductionResponse], error) {
	return listPage(ctx, s.repo, page, pageSize, toProductionResponse)
}

// GetByID returns one production run
func (s *ProductionService) GetByID(ctx context.Context, id uint) (*ProductionResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductionResponse(record)
	return &resp, nil
}

// Create validates and persists a new production run, deriving the hourly
// rate from quantity and duration.
func (s *ProductionService) Create(ctx context.Context, req CreateProductionRequest) (*ProductionResponse, error) {
	var v collector
	record := tracking.ProductionRecord{
		Date:             v.date("date", req.Date),
		Sector:           v.enum("sector", req.Sector, tracking.Sectors),
		Product:          strings.TrimSpace(req.Product),
		Machine:          strings.TrimSpace(req.Machine),
		QuantityProduced: v.positiveNumber("quantityProduced", *req.QuantityProduced),
		DurationMinutes:  v.positiveInt("durationMinutes", *req.DurationMinutes),
		Operator:         optionalText(req.Operator),
	}
	if err := v.result(); err != nil {
		return nil, err
	}
	record.UnitsPerHour = tracking.ComputeUnitsPerHour(record.QuantityProduced, record.DurationMinutes)

	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.recorder, audit.ActionCreateRecord, tracking.EntityProduction, record.ID, audit.Detail{
		"date":              record.Date.String(),
		"sector":            record.Sector,
		"product":           record.Product,
		"machine":           record.Machine,
		"quantity_produced": record.QuantityProduced.InexactFloat64(),
		"duration_minutes":  record.DurationMinutes,
		"units_per_hour":    record.UnitsPerHour.InexactFloat64(),
	})

	resp := toProductionResponse(&record)
	return &resp, nil
}

// Update applies a partial update to a production run. Changing quantity or
// duration re-derives the hourly rate.
func (s *ProductionService) Update(ctx context.Context, id uint, req UpdateProductionRequest) (*ProductionResponse, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
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
	if req.Product != nil {
		fields["product"] = strings.TrimSpace(*req.Product)
	}
	if req.Machine != nil {
		fields["machine"] = strings.TrimSpace(*req.Machine)
	}
	if req.Operator != nil {
		fields["operator"] = optionalText(req.Operator)
	}

	quantity := current.QuantityProduced
	duration := current.DurationMinutes
	if req.QuantityProduced != nil {
		quantity = v.positiveNumber("quantityProduced", *req.QuantityProduced)
		fields["quantity_produced"] = quantity
	}
	if req.DurationMinutes != nil {
		duration = v.positiveInt("durationMinutes", *req.DurationMinutes)
		fields["duration_minutes"] = duration
	}
	if req.QuantityProduced != nil || req.DurationMinutes != nil {
		fields["units_per_hour"] = tracking.ComputeUnitsPerHour(quantity, duration)
	}

	if err := v.result(); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
		recordAudit(ctx, s.recorder, audit.ActionUpdateRecord, tracking.EntityProduction, id, auditDetailFromFields(fields))
	}

	return s.GetByID(ctx, id)
}

// Remove soft-deletes a production run, keeping an identifying snapshot in
// the audit trail.
func (s *ProductionService) Remove(ctx context.Context, id uint) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.recorder, audit.ActionDeleteRecord, tracking.EntityProduction, id, audit.Detail(record.AuditSnapshot()))
	return nil
}

func toProductionResponse(r *tracking.ProductionRecord) ProductionResponse {
	return ProductionResponse{
		ID:               r.ID,
		Date:             r.Date,
		Sector:           r.Sector,
		Product:          r.Product,
		Machine:          r.Machine,
		QuantityProduced: r.QuantityProduced.InexactFloat64(),
		DurationMinutes:  r.DurationMinutes,
		UnitsPerHour:     r.UnitsPerHour.InexactFloat64(),
		Operator:         r.Operator,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
