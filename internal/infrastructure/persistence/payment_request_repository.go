package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/predio/backend/internal/domain/finance"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

// GormPaymentRequestRepository implements PaymentRequestRepository using GORM
type GormPaymentRequestRepository struct {
	db *gorm.DB
}

// NewGormPaymentRequestRepository creates a new GormPaymentRequestRepository
func NewGormPaymentRequestRepository(db *gorm.DB) *GormPaymentRequestRepository {
	return &GormPaymentRequestRepository{db: db}
}

// FindByID finds a payment request by its ID
func (r *GormPaymentRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.PaymentRequest, error) {
	var model models.PaymentRequestModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPending finds payment requests awaiting acknowledgement
func (r *GormPaymentRequestRepository) FindPending(ctx context.Context, filter shared.Filter) ([]finance.PaymentRequest, error) {
	query := r.db.WithContext(ctx).
		Model(&models.PaymentRequestModel{}).
		Where("status = ?", finance.PaymentRequestPending)
	return r.findRequests(applyListFilter(query, filter))
}

// FindByTenantID finds payment requests raised by a tenant
func (r *GormPaymentRequestRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.PaymentRequest, error) {
	query := r.db.WithContext(ctx).
		Model(&models.PaymentRequestModel{}).
		Where("tenant_id = ?", tenantID)
	return r.findRequests(applyListFilter(query, filter))
}

// Save creates or updates a payment request
func (r *GormPaymentRequestRepository) Save(ctx context.Context, request *finance.PaymentRequest) error {
	model := models.PaymentRequestModelFromDomain(request)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteByTenantID deletes all payment requests raised by a tenant
func (r *GormPaymentRequestRepository) DeleteByTenantID(ctx context.Context, tenantID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.PaymentRequestModel{}, "tenant_id = ?", tenantID).Error
}

func (r *GormPaymentRequestRepository) findRequests(query *gorm.DB) ([]finance.PaymentRequest, error) {
	var requestModels []models.PaymentRequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, err
	}
	requests := make([]finance.PaymentRequest, len(requestModels))
	for i, model := range requestModels {
		requests[i] = *model.ToDomain()
	}
	return requests, nil
}

// Ensure GormPaymentRequestRepository implements PaymentRequestRepository
var _ finance.PaymentRequestRepository = (*GormPaymentRequestRepository)(nil)
