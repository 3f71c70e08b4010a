package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	maintenanceapp "github.com/predio/backend/internal/application/maintenance"
	"github.com/predio/backend/internal/interfaces/http/dto"
	"github.com/predio/backend/internal/interfaces/http/middleware"
)

// ComplaintHandler handles tenant complaint submission and admin triage
type ComplaintHandler struct {
	BaseHandler
	maintenanceService *maintenanceapp.Service
}

// NewComplaintHandler creates a ComplaintHandler
func NewComplaintHandler(maintenanceService *maintenanceapp.Service) *ComplaintHandler {
	return &ComplaintHandler{maintenanceService: maintenanceService}
}

// RegisterRoutes registers complaint routes
func (h *ComplaintHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/complaints", h.Create)
	rg.GET("/complaints/mine", h.ListMine)
	rg.DELETE("/complaints/mine/:id", h.DeleteMine)

	admin := rg.Group("/complaints", middleware.RequireAdmin())
	admin.GET("", h.List)
	admin.PUT("/:id/status", h.UpdateStatus)
	admin.DELETE("/:id", h.Delete)
}

// Create files a complaint for the calling tenant
func (h *ComplaintHandler) Create(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req maintenanceapp.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	complaint, err := h.maintenanceService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, complaint)
}

// ListMine returns the caller's own complaints
func (h *ComplaintHandler) ListMine(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	complaints, err := h.maintenanceService.ListByTenant(c.Request.Context(), tenantID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, complaints)
}

// List returns every complaint for the admin dashboard
func (h *ComplaintHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	complaints, err := h.maintenanceService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, complaints)
}

// UpdateStatus applies an admin status transition
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid complaint id")
		return
	}

	var req maintenanceapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	complaint, err := h.maintenanceService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, complaint)
}

// DeleteMine removes one of the caller's own complaints
func (h *ComplaintHandler) DeleteMine(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid complaint id")
		return
	}

	if err := h.maintenanceService.DeleteOwn(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete removes a complaint
func (h *ComplaintHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid complaint id")
		return
	}

	if err := h.maintenanceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
