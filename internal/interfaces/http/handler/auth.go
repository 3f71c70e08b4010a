package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/predio/backend/internal/application/identity"
	"github.com/predio/backend/internal/interfaces/http/middleware"
)

// maxAvatarBytes bounds avatar uploads
const maxAvatarBytes = 2 << 20

// AuthHandler handles login, logout and profile self-service
type AuthHandler struct {
	BaseHandler
	identityService *identity.Service
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(identityService *identity.Service) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

// RegisterPublicRoutes registers routes that skip authentication
func (h *AuthHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
}

// RegisterRoutes registers the authenticated auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/logout", h.Logout)
	rg.GET("/profile", h.Me)
	rg.PUT("/profile", h.UpdateProfile)
	rg.PUT("/profile/avatar", h.SetAvatar)
}

// Login authenticates credentials and returns an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.identityService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Logout revokes the caller's token
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	expiresAt := claims.ExpiresAt.Time
	if err := h.identityService.Logout(c.Request.Context(), claims.ID, expiresAt); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Me returns the caller's profile
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := h.identityService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// UpdateProfile applies self-service edits
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identity.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.identityService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// SetAvatar stores a new avatar image posted as the raw request body
func (h *AuthHandler) SetAvatar(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAvatarBytes))
	if err != nil {
		h.BadRequest(c, "Failed to read request body")
		return
	}

	profile, err := h.identityService.SetAvatar(c.Request.Context(), userID, data, c.ContentType())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}
