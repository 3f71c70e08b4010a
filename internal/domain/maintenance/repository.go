package maintenance

import (
	"context"

	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/shared"
)

// ComplaintRepository defines persistence operations for complaints
type ComplaintRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Complaint, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Complaint, error)
	FindByTenantID(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Complaint, error)
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]Complaint, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	Save(ctx context.Context, complaint *Complaint) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTenantID(ctx context.Context, tenantID uuid.UUID) error
}
