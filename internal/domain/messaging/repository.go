package messaging

import (
	"context"

	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/shared"
)

// NotificationRepository defines persistence operations for notifications
type NotificationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindByTenantID(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Notification, error)
	CountUnread(ctx context.Context, tenantID uuid.UUID) (int64, error)
	Save(ctx context.Context, notification *Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTenantID(ctx context.Context, tenantID uuid.UUID) error
}

// AnnouncementRepository maintains the singleton building announcement
type AnnouncementRepository interface {
	Get(ctx context.Context) (*Announcement, error)
	Upsert(ctx context.Context, announcement *Announcement) error
}
