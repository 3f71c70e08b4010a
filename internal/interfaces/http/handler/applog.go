package handler

import (
	"github.com/gin-gonic/gin"

	auditapp "github.com/predio/backend/internal/application/audit"
	"github.com/predio/backend/internal/interfaces/http/dto"
	"github.com/predio/backend/internal/interfaces/http/middleware"
)

// AppLogHandler handles the diagnostic log endpoints
type AppLogHandler struct {
	BaseHandler
	auditService *auditapp.Service
}

// NewAppLogHandler creates an AppLogHandler
func NewAppLogHandler(auditService *auditapp.Service) *AppLogHandler {
	return &AppLogHandler{auditService: auditService}
}

// RegisterRoutes registers app-log routes. Appending is open to any
// authenticated client; reading and purging are admin-only.
func (h *AppLogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/app-logs", h.Append)

	admin := rg.Group("/app-logs", middleware.RequireAdmin())
	admin.GET("", h.List)
	admin.DELETE("", h.Purge)
}

// Append records a diagnostic entry
func (h *AppLogHandler) Append(c *gin.Context) {
	var req auditapp.AppendLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	log, err := h.auditService.Append(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, log)
}

// List returns diagnostic records
func (h *AppLogHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	logs, err := h.auditService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}

// Purge bulk-deletes every record
func (h *AppLogHandler) Purge(c *gin.Context) {
	deleted, err := h.auditService.Purge(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": deleted})
}
