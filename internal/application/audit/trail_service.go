package audit

import (
	"context"
	"time"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
)

// EntryResponse is the read-model of one audit entry
type EntryResponse struct {
	ID         uint           `json:"id"`
	ActorID    *uint          `json:"actorId"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   uint           `json:"entityId"`
	Detail     map[string]any `json:"detail"`
	IPAddress  string         `json:"ipAddress"`
	UserAgent  string         `json:"userAgent"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// TrailService exposes paginated read access to the audit trail
type TrailService struct {
	repo audit.Repository
}

// NewTrailService creates a trail query service
func NewTrailService(repo audit.Repository) *TrailService {
	return &TrailService{repo: repo}
}

// List returns one page of entries, newest first
func (s *TrailService) List(ctx context.Context, page, pageSize int) (*shared.Paginated[EntryResponse], error) {
	filter := clampFilter(page, pageSize)
	entries, total, err := s.repo.FindPage(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toEntryResponse(&entries[i]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

func toEntryResponse(e *audit.Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		ActorID:    e.ActorID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Detail:     map[string]any(e.Detail),
		IPAddress:  e.IPAddress,
		UserAgent:  e.UserAgent,
		CreatedAt:  e.CreatedAt,
	}
}

func clampFilter(page, pageSize int) shared.Filter {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	return filter
}
