// Package property implements unit administration: the fixed unit set,
// rent amounts, and the admin dashboard summary.
package property

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/predio/backend/internal/domain/maintenance"
	"github.com/predio/backend/internal/domain/property"
	"github.com/predio/backend/internal/domain/shared"
)

// Service manages apartment units
type Service struct {
	apartmentRepo property.ApartmentRepository
	complaintRepo maintenance.ComplaintRepository
	publisher     shared.ChangePublisher
	logger        *zap.Logger
}

// NewService creates a property Service
func NewService(
	apartmentRepo property.ApartmentRepository,
	complaintRepo maintenance.ComplaintRepository,
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
		apartmentRepo: apartmentRepo,
		complaintRepo: complaintRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// Seed creates the fixed unit set 1..unitCount. Units that already exist
// are left untouched, so the call is idempotent across restarts.
func (s *Service) Seed(ctx context.Context, unitCount int, defaultRent decimal.Decimal) (int, error) {
	created := 0
	for number := 1; number <= unitCount; number++ {
		_, err := s.apartmentRepo.FindByNumber(ctx, number)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return created, err
		}

		apartment, err := property.NewApartment(number, defaultRent)
		if err != nil {
			return created, err
		}
		if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
			return created, shared.ErrStoreWrite
		}
		created++
	}
	if created > 0 {
		s.logger.Info("Seeded apartment units", zap.Int("created", created))
	}
	return created, nil
}

// List returns every unit, ordered by number
func (s *Service) List(ctx context.Context, filter shared.Filter) ([]ApartmentResponse, error) {
	apartments, err := s.apartmentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ApartmentResponse, len(apartments))
	for i := range apartments {
		responses[i] = ToApartmentResponse(&apartments[i])
	}
	return responses, nil
}

// Get returns a single unit by number
func (s *Service) Get(ctx context.Context, number int) (*ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	resp := ToApartmentResponse(apartment)
	return &resp, nil
}

// SetRent changes the monthly rent of a unit. The new amount applies from
// the next paid cycle; the current partial fields are left alone.
func (s *Service) SetRent(ctx context.Context, number int, req SetRentRequest) (*ApartmentResponse, error) {
	if req.MonthlyRent.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Monthly rent cannot be negative")
	}

	apartment, err := s.apartmentRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	apartment.MonthlyRent = req.MonthlyRent
	apartment.Touch()
	apartment.IncrementVersion()

	if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
		return nil, shared.ErrStoreWrite
	}

	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "apartments", Action: shared.ChangeUpdate, RowID: apartment.ID.String()})

	resp := ToApartmentResponse(apartment)
	return &resp, nil
}

// Dashboard aggregates the counters shown on the admin landing page
func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	total, err := s.apartmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	apartments, err := s.apartmentRepo.FindAll(ctx, shared.Filter{PageSize: 1000})
	if err != nil {
		return nil, err
	}

	summary := DashboardResponse{TotalUnits: total}
	for i := range apartments {
		if apartments[i].IsAvailable() {
			summary.VacantUnits++
			continue
		}
		summary.OccupiedUnits++
		if apartments[i].RentStatus == property.RentOverdue {
			summary.OverdueUnits++
		}
	}

	open, err := s.complaintRepo.CountByStatus(ctx, maintenance.StatusNew)
	if err != nil {
		return nil, err
	}
	summary.OpenComplaints = open

	return &summary, nil
}
