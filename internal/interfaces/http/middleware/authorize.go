package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/producao/backend/internal/domain/identity"
	"github.com/producao/backend/internal/interfaces/http/dto"
)

// Authorize enforces the role policy table for one entity class and action.
// It must run after JWTAuth; a request with no resolved role is rejected as
// unauthenticated rather than forbidden.
func Authorize(entity string, action identity.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetJWTRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}
		if !identity.Allowed(role, entity, action) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "You do not have permission to perform this action"))
			return
		}
		c.Next()
	}
}
