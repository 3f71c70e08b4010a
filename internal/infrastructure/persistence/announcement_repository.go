package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/predio/backend/internal/domain/messaging"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

// GormAnnouncementRepository implements AnnouncementRepository using GORM.
// The building has a single announcement row identified by a fixed key.
type GormAnnouncementRepository struct {
	db *gorm.DB
}

// NewGormAnnouncementRepository creates a new GormAnnouncementRepository
func NewGormAnnouncementRepository(db *gorm.DB) *GormAnnouncementRepository {
	return &GormAnnouncementRepository{db: db}
}

// Get returns the building announcement
func (r *GormAnnouncementRepository) Get(ctx context.Context) (*messaging.Announcement, error) {
	var model models.AnnouncementModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ?", messaging.AnnouncementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Upsert creates or replaces the building announcement
func (r *GormAnnouncementRepository) Upsert(ctx context.Context, announcement *messaging.Announcement) error {
	model := models.AnnouncementModelFromDomain(announcement)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "active", "updated_at"}),
		}).
		Create(model).Error
}

// Ensure GormAnnouncementRepository implements AnnouncementRepository
var _ messaging.AnnouncementRepository = (*GormAnnouncementRepository)(nil)
