package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/predio/backend/internal/domain/audit"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

// GormAppLogRepository implements AppLogRepository using GORM
type GormAppLogRepository struct {
	db *gorm.DB
}

// NewGormAppLogRepository creates a new GormAppLogRepository
func NewGormAppLogRepository(db *gorm.DB) *GormAppLogRepository {
	return &GormAppLogRepository{db: db}
}

// FindAll finds all diagnostic records matching the filter
func (r *GormAppLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]audit.AppLog, error) {
	query := r.db.WithContext(ctx).Model(&models.AppLogModel{})
	return r.findLogs(applyListFilter(query, filter))
}

// FindByLevel finds diagnostic records with the given level
func (r *GormAppLogRepository) FindByLevel(ctx context.Context, level audit.Level, filter shared.Filter) ([]audit.AppLog, error) {
	query := r.db.WithContext(ctx).Model(&models.AppLogModel{}).Where("level = ?", level)
	return r.findLogs(applyListFilter(query, filter))
}

// Save appends a diagnostic record
func (r *GormAppLogRepository) Save(ctx context.Context, log *audit.AppLog) error {
	model := models.AppLogModelFromDomain(log)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteAll removes every diagnostic record and returns the removed count
func (r *GormAppLogRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.AppLogModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *GormAppLogRepository) findLogs(query *gorm.DB) ([]audit.AppLog, error) {
	var logModels []models.AppLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}
	logs := make([]audit.AppLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// Ensure GormAppLogRepository implements AppLogRepository
var _ audit.AppLogRepository = (*GormAppLogRepository)(nil)
