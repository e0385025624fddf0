package tracking

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
	"github.com/producao/backend/internal/infrastructure/logger"
)

// maxPageSize caps one page of results
const maxPageSize = 100

// clampFilter normalizes raw pagination query values
func clampFilter(page, pageSize int) shared.Filter {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	return filter
}

// listPage runs the common paginated-list flow and maps entities to responses
func listPage[T any, R any](
	ctx context.Context,
	repo shared.RecordRepository[T],
	page, pageSize int,
	toResponse func(*T) R,
) (*shared.Paginated[R], error) {
	filter := clampFilter(page, pageSize)
	records, total, err := repo.FindPage(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]R, 0, len(records))
	for i := range records {
		items = append(items, toResponse(&records[i]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// auditDetailFromFields converts a column-update map into trail detail,
// flattening domain value types to their JSON representations.
func auditDetailFromFields(fields map[string]any) audit.Detail {
	detail := make(audit.Detail, len(fields))
	for column, value := range fields {
		switch v := value.(type) {
		case tracking.Date:
			detail[column] = v.String()
		case decimal.Decimal:
			detail[column] = v.InexactFloat64()
		case *string:
			if v == nil {
				detail[column] = nil
			} else {
				detail[column] = *v
			}
		default:
			detail[column] = value
		}
	}
	return detail
}

// recordAudit appends a trail entry after a committed mutation. Trail write
// failures are logged and swallowed; the mutation has already happened and
// the client response must reflect that.
func recordAudit(ctx context.Context, recorder audit.Recorder, action, entityType string, entityID uint, detail audit.Detail) {
	if recorder == nil {
		return
	}
	entry := &audit.Entry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}
	if err := recorder.Record(ctx, entry); err != nil {
		logger.FromContext(ctx).Error("audit trail write failed",
			zap.String("action", action),
			zap.String("entity_type", entityType),
			zap.Uint("entity_id", entityID),
			zap.Error(err),
		)
	}
}
