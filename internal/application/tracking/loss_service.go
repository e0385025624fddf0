package tracking

import (
	"context"
	"strings"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

// LossService handles production-loss business operations
type LossService struct {
	repo     shared.RecordRepository[tracking.Loss]
	recorder audit.Recorder
}

// NewLossService creates a new LossService
func NewLossService(repo shared.RecordRepository[tracking.Loss], recorder audit.Recorder) *LossService {
	return &LossService{repo: repo, recorder: recorder}
}

// List returns one page of loss records
func (s *LossService) List(ctx context.Context, page, pageSize int) (*shared.Paginated[LossResponse], error) {
	return listPage(ctx, s.repo, page, pageSize, toLossResponse)
}

// GetByID returns one loss record
func (s *LossService) GetByID(ctx context.Context, id uint) (*LossResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toLossResponse(record)
	return &resp, nil
}

// Create validates and persists a new loss record. When totalCost is not
// supplied it is derived as quantity times unit cost.
func (s *LossService) Create(ctx context.Context, req CreateLossRequest) (*LossResponse, error) {
	var v collector
	record := tracking.Loss{
		Date:     v.date("date", req.Date),
		Sector:   v.enum("sector", req.Sector, tracking.Sectors),
		Product:  strings.TrimSpace(req.Product),
		LossType: v.enum("lossType", req.LossType, tracking.LossTypes),
		Quantity: v.positiveNumber("quantity", *req.Quantity),
		Unit:     strings.TrimSpace(req.Unit),
		UnitCost: v.nonNegativeNumber("unitCost", *req.UnitCost),
		Reason:   optionalText(req.Reason),
	}
	if req.TotalCost != nil {
		record.TotalCost = v.nonNegativeNumber("totalCost", *req.TotalCost)
	} else {
		record.TotalCost = record.Quantity.Mul(record.UnitCost).Round(2)
	}
	if err := v.result(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.recorder, audit.ActionCreateRecord, tracking.EntityLoss, record.ID, audit.Detail{
		"date":       record.Date.String(),
		"sector":     record.Sector,
		"product":    record.Product,
		"loss_type":  record.LossType,
		"quantity":   record.Quantity.InexactFloat64(),
		"unit":       record.Unit,
		"unit_cost":  record.UnitCost.InexactFloat64(),
		"total_cost": record.TotalCost.InexactFloat64(),
	})

	resp := toLossResponse(&record)
	return &resp, nil
}

// Update applies a partial update to a loss record. When quantity or unit
// cost change without an explicit totalCost, the total is re-derived.
func (s *LossService) Update(ctx context.Context, id uint, req UpdateLossRequest) (*LossResponse, error) {
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
	if req.LossType != nil {
		fields["loss_type"] = v.enum("lossType", *req.LossType, tracking.LossTypes)
	}
	if req.Unit != nil {
		fields["unit"] = strings.TrimSpace(*req.Unit)
	}
	if req.Reason != nil {
		fields["reason"] = optionalText(req.Reason)
	}

	quantity := current.Quantity
	unitCost := current.UnitCost
	if req.Quantity != nil {
		quantity = v.positiveNumber("quantity", *req.Quantity)
		fields["quantity"] = quantity
	}
	if req.UnitCost != nil {
		unitCost = v.nonNegativeNumber("unitCost", *req.UnitCost)
		fields["unit_cost"] = unitCost
	}
	switch {
	case req.TotalCost != nil:
		fields["total_cost"] = v.nonNegativeNumber("totalCost", *req.TotalCost)
	case req.Quantity != nil || req.UnitCost != nil:
		fields["total_cost"] = quantity.Mul(unitCost).Round(2)
	}

	if err := v.result(); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
		recordAudit(ctx, s.recorder, audit.ActionUpdateRecord, tracking.EntityLoss, id, auditDetailFromFields(fields))
	}

	return s.GetByID(ctx, id)
}

// Remove soft-deletes a loss record, keeping an identifying snapshot in the
// audit trail.
func (s *LossService) Remove(ctx context.Context, id uint) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.recorder, audit.ActionDeleteRecord, tracking.EntityLoss, id, audit.Detail(record.AuditSnapshot()))
	return nil
}

func toLossResponse(r *tracking.Loss) LossResponse {
	return LossResponse{
		ID:        r.ID,
		Date:      r.Date,
		Sector:    r.Sector,
		Product:   r.Product,
		LossType:  r.LossType,
		Quantity:  r.Quantity.InexactFloat64(),
		Unit:      r.Unit,
		UnitCost:  r.UnitCost.InexactFloat64(),
		TotalCost: r.TotalCost.InexactFloat64(),
		Reason:    r.Reason,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
