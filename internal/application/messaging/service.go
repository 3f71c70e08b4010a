// Package messaging implements tenant notifications and the building-wide
// announcement singleton.
package messaging

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/predio/backend/internal/domain/messaging"
	"github.com/predio/backend/internal/domain/shared"
)

// Service manages notifications and the announcement
type Service struct {
	notificationRepo messaging.NotificationRepository
	announcementRepo messaging.AnnouncementRepository
	publisher        shared.ChangePublisher
	logger           *zap.Logger
}

// NewService creates a messaging Service
func NewService(
	notificationRepo messaging.NotificationRepository,
	announcementRepo messaging.AnnouncementRepository,
	publisher shared.ChangePublisher,
	logger *zap.Logger,
) *Service {
	if publisher == nil {
		publisher = shared.NopChangePublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		notificationRepo: notificationRepo,
		announcementRepo: announcementRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// Create sends a direct notification to one tenant
func (s *Service) Create(ctx context.Context, req CreateNotificationRequest) (*NotificationResponse, error) {
	notification, err := messaging.NewNotification(req.TenantID, req.Title, req.Message, req.Icon)
	if err != nil {
		return nil, err
	}
	if err := s.notificationRepo.Save(ctx, notification); err != nil {
		s.logger.Error("Failed to save notification",
			zap.String("tenant_id", req.TenantID.String()), zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "notifications", Action: shared.ChangeInsert, RowID: notification.ID.String()})

	resp := ToNotificationResponse(notification)
	return &resp, nil
}

// ListByTenant returns the caller's notifications, newest first by default
func (s *Service) ListByTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindByTenantID(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = ToNotificationResponse(&notifications[i])
	}
	return responses, nil
}

// CountUnread returns the tenant's unread badge count
func (s *Service) CountUnread(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, tenantID)
}

// MarkRead flags a notification as read. Tenants may only touch their own.
func (s *Service) MarkRead(ctx context.Context, tenantID, id uuid.UUID) (*NotificationResponse, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.TenantID != tenantID {
		return nil, shared.ErrNotAuthorized
	}

	notification.MarkRead()
	if err := s.notificationRepo.Save(ctx, notification); err != nil {
		return nil, shared.ErrStoreWrite
	}

	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "notifications", Action: shared.ChangeUpdate, RowID: notification.ID.String()})

	resp := ToNotificationResponse(notification)
	return &resp, nil
}

// Dismiss removes a notification for its owner
func (s *Service) Dismiss(ctx context.Context, tenantID, id uuid.UUID) error {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.TenantID != tenantID {
		return shared.ErrNotAuthorized
	}
	if err := s.notificationRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "notifications", Action: shared.ChangeDelete, RowID: id.String()})
	return nil
}

// GetAnnouncement returns the building notice. A missing row reads as an
// empty inactive announcement rather than an error.
func (s *Service) GetAnnouncement(ctx context.Context) (*AnnouncementResponse, error) {
	announcement, err := s.announcementRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &AnnouncementResponse{}, nil
		}
		return nil, err
	}
	resp := ToAnnouncementResponse(announcement)
	return &resp, nil
}

// UpsertAnnouncement replaces the building notice
func (s *Service) UpsertAnnouncement(ctx context.Context, req UpsertAnnouncementRequest) (*AnnouncementResponse, error) {
	announcement, err := messaging.NewAnnouncement(req.Content, req.Active)
	if err != nil {
		return nil, err
	}
	if err := s.announcementRepo.Upsert(ctx, announcement); err != nil {
		s.logger.Error("Failed to upsert announcement", zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "announcements", Action: shared.ChangeUpdate, RowID: announcement.ID})

	resp := ToAnnouncementResponse(announcement)
	return &resp, nil
}
