package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/predio/backend/internal/application/lifecycle"
	"github.com/predio/backend/internal/interfaces/http/dto"
	"github.com/predio/backend/internal/interfaces/http/middleware"
)

// TenantHandler handles the privileged tenant lifecycle endpoints and the
// tenant-scoped payment request.
type TenantHandler struct {
	BaseHandler
	lifecycleService *lifecycle.Service
}

// NewTenantHandler creates a TenantHandler
func NewTenantHandler(lifecycleService *lifecycle.Service) *TenantHandler {
	return &TenantHandler{lifecycleService: lifecycleService}
}

// RegisterRoutes registers tenant lifecycle routes
func (h *TenantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/tenants", middleware.RequireAdmin())
	admin.POST("", h.Onboard)
	admin.GET("", h.List)
	admin.GET("/:id", h.Get)
	admin.DELETE("/:id", h.Offboard)
	admin.POST("/:id/reset-password", h.ResetPassword)

	rg.POST("/payments/request", h.RequestPayment)
}

// Onboard creates a tenant account and claims an apartment in one call
func (h *TenantHandler) Onboard(c *gin.Context) {
	var req lifecycle.OnboardTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	tenant, err := h.lifecycleService.Onboard(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tenant)
}

// List returns every tenant with their apartment binding
func (h *TenantHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	tenants, err := h.lifecycleService.ListTenants(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenants)
}

// Get returns one tenant
func (h *TenantHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tenant id")
		return
	}

	tenant, err := h.lifecycleService.GetTenant(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tenant)
}

// Offboard removes a tenant and every dependent record
func (h *TenantHandler) Offboard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tenant id")
		return
	}

	if err := h.lifecycleService.Offboard(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ResetPassword sets a new password without the old one
func (h *TenantHandler) ResetPassword(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tenant id")
		return
	}

	var req lifecycle.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.lifecycleService.ResetPassword(c.Request.Context(), id, req.NewPassword); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RequestPayment flags the caller's apartment as awaiting settlement
func (h *TenantHandler) RequestPayment(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req lifecycle.PaymentRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.lifecycleService.RequestPayment(c.Request.Context(), tenantID, req.ApartmentNumber)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, request)
}
