package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	messagingapp "github.com/predio/backend/internal/application/messaging"
	"github.com/predio/backend/internal/interfaces/http/dto"
	"github.com/predio/backend/internal/interfaces/http/middleware"
)

// NotificationHandler handles tenant notifications and the announcement
type NotificationHandler struct {
	BaseHandler
	messagingService *messagingapp.Service
}

// NewNotificationHandler creates a NotificationHandler
func NewNotificationHandler(messagingService *messagingapp.Service) *NotificationHandler {
	return &NotificationHandler{messagingService: messagingService}
}

// RegisterRoutes registers notification and announcement routes
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.ListMine)
	rg.GET("/notifications/unread-count", h.UnreadCount)
	rg.PUT("/notifications/:id/read", h.MarkRead)
	rg.DELETE("/notifications/:id", h.Dismiss)
	rg.GET("/announcement", h.GetAnnouncement)

	admin := rg.Group("", middleware.RequireAdmin())
	admin.POST("/notifications", h.Create)
	admin.PUT("/announcement", h.UpsertAnnouncement)
}

// ListMine returns the caller's notifications
func (h *NotificationHandler) ListMine(c *gin.Context) {
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

	notifications, err := h.messagingService.ListByTenant(c.Request.Context(), tenantID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notifications)
}

// UnreadCount returns the caller's unread badge count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	count, err := h.messagingService.CountUnread(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"unread": count})
}

// MarkRead flags one of the caller's notifications as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification id")
		return
	}

	notification, err := h.messagingService.MarkRead(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notification)
}

// Dismiss deletes one of the caller's notifications
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	tenantID, ok := callerID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification id")
		return
	}

	if err := h.messagingService.Dismiss(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Create sends a direct notification to a tenant
func (h *NotificationHandler) Create(c *gin.Context) {
	var req messagingapp.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	notification, err := h.messagingService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, notification)
}

// GetAnnouncement returns the building-wide notice
func (h *NotificationHandler) GetAnnouncement(c *gin.Context) {
	announcement, err := h.messagingService.GetAnnouncement(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, announcement)
}

// UpsertAnnouncement replaces the building-wide notice
func (h *NotificationHandler) UpsertAnnouncement(c *gin.Context) {
	var req messagingapp.UpsertAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	announcement, err := h.messagingService.UpsertAnnouncement(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, announcement)
}
