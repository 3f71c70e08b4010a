package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/predio/backend/internal/domain/property"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

// GormApartmentRepository implements ApartmentRepository using GORM
type GormApartmentRepository struct {
	db *gorm.DB
}

// NewGormApartmentRepository creates a new GormApartmentRepository
func NewGormApartmentRepository(db *gorm.DB) *GormApartmentRepository {
	return &GormApartmentRepository{db: db}
}

// FindByNumber finds an apartment by its unit number
func (r *GormApartmentRepository) FindByNumber(ctx context.Context, number int) (*property.Apartment, error) {
	var model models.ApartmentModel
	if err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTenantID finds the apartment occupied by a tenant
func (r *GormApartmentRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID) (*property.Apartment, error) {
	var model models.ApartmentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all apartments matching the filter
func (r *GormApartmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Apartment, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "number"
		filter.OrderDir = "asc"
	}
	query := r.db.WithContext(ctx).Model(&models.ApartmentModel{})
	return r.findApartments(applyListFilter(query, filter))
}

// FindByOccupancy finds apartments with the given occupancy status
func (r *GormApartmentRepository) FindByOccupancy(ctx context.Context, status property.OccupancyStatus, filter shared.Filter) ([]property.Apartment, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "number"
		filter.OrderDir = "asc"
	}
	query := r.db.WithContext(ctx).Model(&models.ApartmentModel{}).Where("occupancy = ?", status)
	return r.findApartments(applyListFilter(query, filter))
}

// Count counts all apartments
func (r *GormApartmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ApartmentModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an apartment
func (r *GormApartmentRepository) Save(ctx context.Context, apartment *property.Apartment) error {
	model := models.ApartmentModelFromDomain(apartment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Claim atomically binds a tenant to an apartment. The conditional write
// only succeeds while the row is still marked available, so two concurrent
// assignments to the same unit cannot both win.
func (r *GormApartmentRepository) Claim(ctx context.Context, apartment *property.Apartment) error {
	model := models.ApartmentModelFromDomain(apartment)
	result := r.db.WithContext(ctx).
		Model(&models.ApartmentModel{}).
		Where("number = ? AND occupancy = ?", apartment.Number, property.OccupancyAvailable).
		Updates(map[string]interface{}{
			"occupancy":         model.Occupancy,
			"rent_status":       model.RentStatus,
			"tenant_id":         model.TenantID,
			"next_due_date":     model.NextDueDate,
			"payment_requested": model.PaymentRequested,
			"amount_paid":       model.AmountPaid,
			"remaining_balance": model.RemainingBalance,
			"version":           model.Version,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrApartmentUnavailable
	}
	return nil
}

// Release resets the apartment bound to the tenant back to vacant
func (r *GormApartmentRepository) Release(ctx context.Context, tenantID uuid.UUID) error {
	apartment, err := r.FindByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	apartment.Vacate()
	return r.Save(ctx, apartment)
}

func (r *GormApartmentRepository) findApartments(query *gorm.DB) ([]property.Apartment, error) {
	var apartmentModels []models.ApartmentModel
	if err := query.Find(&apartmentModels).Error; err != nil {
		return nil, err
	}
	apartments := make([]property.Apartment, len(apartmentModels))
	for i, model := range apartmentModels {
		apartments[i] = *model.ToDomain()
	}
	return apartments, nil
}

// Ensure GormApartmentRepository implements ApartmentRepository
var _ property.ApartmentRepository = (*GormApartmentRepository)(nil)
