package messaging

import (
	"strings"

	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/shared"
)

// Notification is an admin-to-tenant message shown in the tenant portal
type Notification struct {
	shared.BaseAggregateRoot
	TenantID    uuid.UUID
	Title       string
	Message     string
	Icon        string
	Read        bool
	Dismissible bool
}

// NewNotification creates an unread notification for a tenant
func NewNotification(tenantID uuid.UUID, title, message, icon string) (*Notification, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Tenant ID cannot be empty")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Title cannot exceed 200 characters")
	}
	if len(message) > 1000 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Message cannot exceed 1000 characters")
	}
	return &Notification{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenantID:          tenantID,
		Title:             title,
		Message:           message,
		Icon:              icon,
		Dismissible:       true,
	}, nil
}

// MarkRead flags the notification as read by the tenant
func (n *Notification) MarkRead() {
	n.Read = true
	n.Touch()
	n.IncrementVersion()
}
