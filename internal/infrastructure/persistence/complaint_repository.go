package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/predio/backend/internal/domain/maintenance"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

// GormComplaintRepository implements ComplaintRepository using GORM
type GormComplaintRepository struct {
	db *gorm.DB
}

// NewGormComplaintRepository creates a new GormComplaintRepository
func NewGormComplaintRepository(db *gorm.DB) *GormComplaintRepository {
	return &GormComplaintRepository{db: db}
}

// FindByID finds a complaint by its ID
func (r *GormComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Complaint, error) {
	var model models.ComplaintModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all complaints matching the filter
func (r *GormComplaintRepository) FindAll(ctx context.Context, filter shared.Filter) ([]maintenance.Complaint, error) {
	query := r.db.WithContext(ctx).Model(&models.ComplaintModel{})
	return r.findComplaints(applyListFilter(query, filter))
}

// FindByTenantID finds complaints filed by a tenant
func (r *GormComplaintRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]maintenance.Complaint, error) {
	query := r.db.WithContext(ctx).Model(&models.ComplaintModel{}).Where("tenant_id = ?", tenantID)
	return r.findComplaints(applyListFilter(query, filter))
}

// FindByStatus finds complaints with the given status
func (r *GormComplaintRepository) FindByStatus(ctx context.Context, status maintenance.Status, filter shared.Filter) ([]maintenance.Complaint, error) {
	query := r.db.WithContext(ctx).Model(&models.ComplaintModel{}).Where("status = ?", status)
	return r.findComplaints(applyListFilter(query, filter))
}

// CountByStatus counts complaints with the given status
func (r *GormComplaintRepository) CountByStatus(ctx context.Context, status maintenance.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ComplaintModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a complaint
func (r *GormComplaintRepository) Save(ctx context.Context, complaint *maintenance.Complaint) error {
	model := models.ComplaintModelFromDomain(complaint)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a complaint
func (r *GormComplaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ComplaintModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByTenantID deletes all complaints filed by a tenant
func (r *GormComplaintRepository) DeleteByTenantID(ctx context.Context, tenantID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.ComplaintModel{}, "tenant_id = ?", tenantID).Error
}

func (r *GormComplaintRepository) findComplaints(query *gorm.DB) ([]maintenance.Complaint, error) {
	var complaintModels []models.ComplaintModel
	if err := query.Find(&complaintModels).Error; err != nil {
		return nil, err
	}
	complaints := make([]maintenance.Complaint, len(complaintModels))
	for i, model := range complaintModels {
		complaints[i] = *model.ToDomain()
	}
	return complaints, nil
}

// Ensure GormComplaintRepository implements ComplaintRepository
var _ maintenance.ComplaintRepository = (*GormComplaintRepository)(nil)
