package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/producao/backend/internal/domain/identity"
	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/interfaces/http/middleware"
)

// RecordService is the uniform contract every tracked-record service
// fulfills: paginated list, lookup, strict create, partial update, remove.
type RecordService[C any, U any, R any] interface {
	List(ctx context.Context, page, pageSize int) (*shared.Paginated[R], error)
	GetByID(ctx context.Context, id uint) (*R, error)
	Create(ctx context.Context, req C) (*R, error)
	Update(ctx context.Context, id uint, req U) (*R, error)
	Remove(ctx context.Context, id uint) error
}

// RecordHandler serves the uniform CRUD surface of one tracked-record
// module. The entity name doubles as the route segment and the policy key.
type RecordHandler[C any, U any, R any] struct {
	BaseHandler
	service RecordService[C, U, R]
	entity  string
	auth    gin.HandlerFunc
}

// NewRecordHandler creates a handler for one record module
func NewRecordHandler[C any, U any, R any](entity string, service RecordService[C, U, R], auth gin.HandlerFunc) *RecordHandler[C, U, R] {
	return &RecordHandler[C, U, R]{service: service, entity: entity, auth: auth}
}

// RegisterRoutes registers the module's routes on the API group
func (h *RecordHandler[C, U, R]) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.entity)
	g.Use(h.auth)
	g.GET("", middleware.Authorize(h.entity, identity.ActionRead), h.List)
	g.GET("/:id", middleware.Authorize(h.entity, identity.ActionRead), h.Get)
	g.POST("", middleware.Authorize(h.entity, identity.ActionCreate), h.Create)
	g.PUT("/:id", middleware.Authorize(h.entity, identity.ActionUpdate), h.Update)
	g.PATCH("/:id", middleware.Authorize(h.entity, identity.ActionUpdate), h.Update)
	g.DELETE("/:id", middleware.Authorize(h.entity, identity.ActionDelete), h.Delete)
}

// List returns one page of records
func (h *RecordHandler[C, U, R]) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	result, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns one record by id
func (h *RecordHandler[C, U, R]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Create validates and persists a new record
func (h *RecordHandler[C, U, R]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	record, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// Update applies a partial update to a record
func (h *RecordHandler[C, U, R]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	record, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete removes a record
func (h *RecordHandler[C, U, R]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Record deleted", nil)
}
