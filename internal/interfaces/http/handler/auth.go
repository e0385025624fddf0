package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appidentity "github.com/producao/backend/internal/application/identity"
	"github.com/producao/backend/internal/interfaces/http/dto"
	"github.com/producao/backend/internal/interfaces/http/middleware"
)

// AuthHandler serves registration, login and session management
type AuthHandler struct {
	BaseHandler
	service    *appidentity.AuthService
	auth       gin.HandlerFunc
	loginLimit gin.HandlerFunc
}

// NewAuthHandler creates a new auth handler. loginLimit guards the
// credential endpoints with a stricter rate limit; pass nil to disable.
func NewAuthHandler(service *appidentity.AuthService, auth, loginLimit gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{service: service, auth: auth, loginLimit: loginLimit}
}

// RegisterRoutes registers auth routes on the API group
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/auth")

	public := []gin.HandlerFunc{}
	if h.loginLimit != nil {
		public = append(public, h.loginLimit)
	}

	g.POST("/register", append(public, h.Register)...)
	g.POST("/login", append(public, h.Login)...)
	g.POST("/refresh", h.Refresh)
	g.POST("/logout", h.auth, h.Logout)
	g.GET("/me", h.auth, h.Me)
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), appidentity.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// Login authenticates a user and returns a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), appidentity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Refresh exchanges a refresh token for a fresh token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tokens)
}

// Logout revokes the current session's tokens
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
		return
	}

	var req LogoutRequest
	// Body is optional on logout.
	_ = c.ShouldBindJSON(&req)

	if err := h.service.Logout(c.Request.Context(), claims, req.RefreshToken); err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Logged out", nil)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetJWTUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
		return
	}

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}
