package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predio/backend/internal/domain/messaging"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

func seedNotification(t *testing.T, repo *GormNotificationRepository, tenantID uuid.UUID, title string) *messaging.Notification {
	t.Helper()
	notification, err := messaging.NewNotification(tenantID, title, "details", "bell")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), notification))
	return notification
}

func TestGormNotificationRepository_CountUnread(t *testing.T) {
	db := setupTestDB(t, &models.NotificationModel{})
	repo := NewGormNotificationRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	first := seedNotification(t, repo, tenantID, "Rent due")
	seedNotification(t, repo, tenantID, "Elevator maintenance")
	seedNotification(t, repo, uuid.New(), "Other tenant")

	count, err := repo.CountUnread(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	first.MarkRead()
	require.NoError(t, repo.Save(ctx, first))

	count, err = repo.CountUnread(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormNotificationRepository_DeleteByTenantID(t *testing.T) {
	db := setupTestDB(t, &models.NotificationModel{})
	repo := NewGormNotificationRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	seedNotification(t, repo, tenantID, "Rent due")
	seedNotification(t, repo, tenantID, "Welcome")
	other := seedNotification(t, repo, uuid.New(), "Keep me")

	require.NoError(t, repo.DeleteByTenantID(ctx, tenantID))

	remaining, err := repo.FindByTenantID(ctx, tenantID, shared.Filter{})
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keep me", kept.Title)
}

func TestGormAnnouncementRepository_Upsert(t *testing.T) {
	db := setupTestDB(t, &models.AnnouncementModel{})
	repo := NewGormAnnouncementRepository(db)
	ctx := context.Background()

	t.Run("missing announcement returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("upsert creates then replaces", func(t *testing.T) {
		announcement, err := messaging.NewAnnouncement("Water shutdown on Friday", true)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, announcement))

		found, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Water shutdown on Friday", found.Content)
		assert.True(t, found.Active)

		updated, err := messaging.NewAnnouncement("Resolved", false)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, updated))

		found, err = repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Resolved", found.Content)
		assert.False(t, found.Active)
	})
}
