package tracking

import (
	"context"
	"strings"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

// ErrorService handles production-error business operations. Removal is
// physical; the audit snapshot is the only surviving trace.
type ErrorService struct {
	repo     shared.RecordRepository[tracking.ProductionError]
	recorder audit.Recorder
}

// NewErrorService creates a new ErrorService
func NewErrorService(repo shared.RecordRepository[tracking.ProductionError], recorder audit.Recorder) *ErrorService {
	return &ErrorService{repo: repo, recorder: recorder}
}

// List returns one page of production errors
func (s *ErrorService) List(ctx context.Context, page, pageSize int) (*shared.Paginated[ErrorResponse], error) {
	return listPage(ctx, s.repo, page, pageSize, toErrorResponse)
}

// GetByID returns one production error
func (s *ErrorService) GetByID(ctx context.Context, id uint) (*ErrorResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toErrorResponse(record)
	return &resp, nil
}

// Create validates and persists a new production error
func (s *ErrorService) Create(ctx context.Context, req CreateErrorRequest) (*ErrorResponse, error) {
	var v collector
	record := tracking.ProductionError{
		Date:        v.date("date", req.Date),
		Sector:      v.enum("sector", req.Sector, tracking.Sectors),
		Product:     strings.TrimSpace(req.Product),
		Category:    v.enum("category", req.Category, tracking.ErrorCategories),
		Description: strings.TrimSpace(req.Description),
		Cost:        v.nonNegativeNumber("cost", *req.Cost),
	}
	if err := v.result(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.recorder, audit.ActionCreateRecord, tracking.EntityError, record.ID, audit.Detail{
		"date":        record.Date.String(),
		"sector":      record.Sector,
		"product":     record.Product,
		"category":    record.Category,
		"description": record.Description,
		"cost":        record.Cost.InexactFloat64(),
	})

	resp := toErrorResponse(&record)
	return &resp, nil
}

// Update applies a partial update to a production error
func (s *ErrorService) Update(ctx context.Context, id uint, req UpdateErrorRequest) (*ErrorResponse, error) {
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
	if req.Product != nil {
		fields["product"] = strings.TrimSpace(*req.Product)
	}
	if req.Category != nil {
		fields["category"] = v.enum("category", *req.Category, tracking.ErrorCategories)
	}
	if req.Description != nil {
		fields["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Cost != nil {
		fields["cost"] = v.nonNegativeNumber("cost", *req.Cost)
	}
	if err := v.result(); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
		recordAudit(ctx, s.recorder, audit.ActionUpdateRecord, tracking.EntityError, id, auditDetailFromFields(fields))
	}

	return s.GetByID(ctx, id)
}

// Remove physically deletes a production error after capturing its snapshot
func (s *ErrorService) Remove(ctx context.Context, id uint) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.recorder, audit.ActionDeleteRecord, tracking.EntityError, id, audit.Detail(record.AuditSnapshot()))
	return nil
}

func toErrorResponse(r *tracking.ProductionError) ErrorResponse {
	return ErrorResponse{
		ID:          r.ID,
		Date:        r.Date,
		Sector:      r.Sector,
		Product:     r.Product,
		Category:    r.Category,
		Description: r.Description,
		Cost:        r.Cost.InexactFloat64(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
