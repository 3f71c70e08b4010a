package messaging

import (
	"time"

	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/messaging"
)

// CreateNotificationRequest is the admin input for a direct tenant message
type CreateNotificationRequest struct {
	TenantID uuid.UUID `json:"tenant_id" binding:"required"`
	Title    string    `json:"title" binding:"required"`
	Message  string    `json:"message"`
	Icon     string    `json:"icon"`
}

// UpsertAnnouncementRequest replaces the building-wide notice
type UpsertAnnouncementRequest struct {
	Content string `json:"content"`
	Active  bool   `json:"active"`
}

// NotificationResponse is the API view of a notification
type NotificationResponse struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Icon        string    `json:"icon"`
	Read        bool      `json:"read"`
	Dismissible bool      `json:"dismissible"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToNotificationResponse converts a domain Notification
func ToNotificationResponse(notification *messaging.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          notification.ID,
		TenantID:    notification.TenantID,
		Title:       notification.Title,
		Message:     notification.Message,
		Icon:        notification.Icon,
		Read:        notification.Read,
		Dismissible: notification.Dismissible,
		CreatedAt:   notification.CreatedAt,
	}
}

// AnnouncementResponse is the API view of the building announcement
type AnnouncementResponse struct {
	Content   string    `json:"content"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToAnnouncementResponse converts the domain Announcement
func ToAnnouncementResponse(announcement *messaging.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		Content:   announcement.Content,
		Active:    announcement.Active,
		UpdatedAt: announcement.UpdatedAt,
	}
}
