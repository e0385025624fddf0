package handler

import (
	"github.com/gin-gonic/gin"

	appaudit "github.com/producao/backend/internal/application/audit"
	"github.com/producao/backend/internal/domain/identity"
	"github.com/producao/backend/internal/interfaces/http/middleware"
)

// AuditHandler serves read access to the audit trail
type AuditHandler struct {
	BaseHandler
	service *appaudit.TrailService
	auth    gin.HandlerFunc
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service *appaudit.TrailService, auth gin.HandlerFunc) *AuditHandler {
	return &AuditHandler{service: service, auth: auth}
}

// RegisterRoutes registers audit routes on the API group
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/audit")
	g.Use(h.auth)
	g.GET("", middleware.Authorize(identity.AuditEntity, identity.ActionRead), h.List)
}

// List returns one page of audit entries, newest first
func (h *AuditHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	result, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
