package property

import (
	"context"

	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/shared"
)

// ApartmentRepository defines persistence operations for apartments
type ApartmentRepository interface {
	FindByNumber(ctx context.Context, number int) (*Apartment, error)
	FindByTenantID(ctx context.Context, tenantID uuid.UUID) (*Apartment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Apartment, error)
	FindByOccupancy(ctx context.Context, status OccupancyStatus, filter shared.Filter) ([]Apartment, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, apartment *Apartment) error
	// Claim atomically binds a tenant to an apartment with a conditional
	// write (number matches AND occupancy is still available). Returns
	// shared.ErrApartmentUnavailable when the unit was taken concurrently.
	Claim(ctx context.Context, apartment *Apartment) error
	// Release resets the apartment bound to the tenant back to vacant.
	Release(ctx context.Context, tenantID uuid.UUID) error
}
