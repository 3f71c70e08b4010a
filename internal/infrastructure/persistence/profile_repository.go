package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/predio/backend/internal/domain/residency"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

// GormProfileRepository implements ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByID finds a profile by its ID
func (r *GormProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*residency.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a profile by email
func (r *GormProfileRepository) FindByEmail(ctx context.Context, email string) (*residency.Profile, error) {
	if email == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Email cannot be empty")
	}
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPhoneSuffix returns the first tenant profile whose phone number,
// reduced to digits, ends with the given suffix. Phone numbers are stored
// as entered, so the digit normalization happens here rather than in SQL.
func (r *GormProfileRepository) FindByPhoneSuffix(ctx context.Context, suffix string) (*residency.Profile, error) {
	if suffix == "" {
		return nil, shared.ErrNotFound
	}
	var profileModels []models.ProfileModel
	if err := r.db.WithContext(ctx).
		Where("role = ? AND phone <> ''", residency.RoleTenant).
		Order("created_at ASC").
		Find(&profileModels).Error; err != nil {
		return nil, err
	}
	for _, model := range profileModels {
		profile := model.ToDomain()
		if strings.HasSuffix(profile.PhoneSuffix(len(suffix)), suffix) {
			return profile, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll finds all profiles matching the filter
func (r *GormProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]residency.Profile, error) {
	query := r.db.WithContext(ctx).Model(&models.ProfileModel{})
	query = r.applySearch(query, filter)
	return r.findProfiles(applyListFilter(query, filter))
}

// FindByRole finds profiles with the given role
func (r *GormProfileRepository) FindByRole(ctx context.Context, role residency.Role, filter shared.Filter) ([]residency.Profile, error) {
	query := r.db.WithContext(ctx).Model(&models.ProfileModel{}).Where("role = ?", role)
	query = r.applySearch(query, filter)
	return r.findProfiles(applyListFilter(query, filter))
}

// Count counts all profiles
func (r *GormProfileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProfileModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a profile
func (r *GormProfileRepository) Save(ctx context.Context, profile *residency.Profile) error {
	model := models.ProfileModelFromDomain(profile)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a profile
func (r *GormProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormProfileRepository) findProfiles(query *gorm.DB) ([]residency.Profile, error) {
	var profileModels []models.ProfileModel
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, err
	}
	profiles := make([]residency.Profile, len(profileModels))
	for i, model := range profileModels {
		profiles[i] = *model.ToDomain()
	}
	return profiles, nil
}

func (r *GormProfileRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			pattern, pattern, "%"+filter.Search+"%")
	}
	return query
}

// Ensure GormProfileRepository implements ProfileRepository
var _ residency.ProfileRepository = (*GormProfileRepository)(nil)
