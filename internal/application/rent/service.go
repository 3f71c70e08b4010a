// Package rent implements admin rent-status transitions: the paid/pending/
// overdue/partial state machine, the revenue ledger append and the tenant
// notification fan-out.
package rent

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/predio/backend/internal/domain/finance"
	"github.com/predio/backend/internal/domain/messaging"
	"github.com/predio/backend/internal/domain/property"
	"github.com/predio/backend/internal/domain/shared"
)

// Service applies rent-status transitions to occupied units
type Service struct {
	apartmentRepo    property.ApartmentRepository
	transactionRepo  finance.TransactionRepository
	notificationRepo messaging.NotificationRepository
	publisher        shared.ChangePublisher
	logger           *zap.Logger
}

// NewService creates a rent Service
func NewService(
	apartmentRepo property.ApartmentRepository,
	transactionRepo finance.TransactionRepository,
	notificationRepo messaging.NotificationRepository,
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
		apartmentRepo:    apartmentRepo,
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// SetStatus applies a transition to the unit. A transition to paid (directly
// or via a partial payment covering the full rent) appends exactly one
// revenue ledger entry of the monthly rent and clears the payment-request
// flag. Every transition notifies the tenant.
func (s *Service) SetStatus(ctx context.Context, apartmentNumber int, req UpdateStatusRequest) (*StatusResponse, error) {
	status := property.RentStatus(req.Status)
	if !property.ValidRentStatus(status) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Unknown rent status")
	}

	apartment, err := s.apartmentRepo.FindByNumber(ctx, apartmentNumber)
	if err != nil {
		return nil, err
	}

	switch status {
	case property.RentPaid:
		err = apartment.MarkPaid()
	case property.RentPartial:
		if req.AmountPaid == nil {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Partial status requires amount_paid")
		}
		err = apartment.MarkPartial(*req.AmountPaid)
	default:
		err = apartment.SetRentStatus(status)
	}
	if err != nil {
		return nil, err
	}

	if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
		s.logger.Error("Failed to save rent transition",
			zap.Int("apartment", apartmentNumber), zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	// A partial payment covering the full rent stores paid; the ledger
	// entry follows the stored status, not the requested one.
	if apartment.RentStatus == property.RentPaid {
		s.appendRevenue(ctx, apartment)
	}
	s.notifyTenant(ctx, apartment)
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "apartments", Action: shared.ChangeUpdate, RowID: apartment.ID.String()})

	resp := ToStatusResponse(apartment)
	return &resp, nil
}

// SweepOverdue marks every pending unit past its due date as overdue and
// returns how many units changed. Admin-triggered; there is no scheduler.
func (s *Service) SweepOverdue(ctx context.Context, now time.Time) (int, error) {
	occupied, err := s.apartmentRepo.FindByOccupancy(ctx, property.OccupancyOccupied, shared.Filter{PageSize: 1000})
	if err != nil {
		return 0, err
	}

	swept := 0
	for i := range occupied {
		apartment := &occupied[i]
		if !apartment.IsOverdueAt(now) {
			continue
		}
		if err := apartment.SetRentStatus(property.RentOverdue); err != nil {
			s.logger.Warn("Overdue sweep skipped a unit",
				zap.Int("apartment", apartment.Number), zap.Error(err))
			continue
		}
		if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
			s.logger.Error("Overdue sweep failed to save a unit",
				zap.Int("apartment", apartment.Number), zap.Error(err))
			continue
		}
		s.notifyTenant(ctx, apartment)
		s.publisher.Publish(ctx, shared.ChangeEvent{Table: "apartments", Action: shared.ChangeUpdate, RowID: apartment.ID.String()})
		swept++
	}
	return swept, nil
}

// appendRevenue records the rent payment in the ledger. Best-effort: the
// status transition already committed, a ledger failure is logged loudly.
func (s *Service) appendRevenue(ctx context.Context, apartment *property.Apartment) {
	transaction, err := finance.NewRentRevenue(apartment.Number, apartment.MonthlyRent)
	if err == nil {
		err = s.transactionRepo.Save(ctx, transaction)
	}
	if err != nil {
		s.logger.Error("Failed to append rent revenue entry",
			zap.Int("apartment", apartment.Number), zap.Error(err))
		return
	}
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "transactions", Action: shared.ChangeInsert, RowID: transaction.ID.String()})
}

func (s *Service) notifyTenant(ctx context.Context, apartment *property.Apartment) {
	if apartment.TenantID == nil {
		return
	}
	title, message, icon := statusNotification(apartment.RentStatus)
	notification, err := messaging.NewNotification(*apartment.TenantID, title, message, icon)
	if err == nil {
		err = s.notificationRepo.Save(ctx, notification)
	}
	if err != nil {
		s.logger.Warn("Failed to notify tenant of rent transition",
			zap.Int("apartment", apartment.Number), zap.Error(err))
		return
	}
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "notifications", Action: shared.ChangeInsert, RowID: notification.ID.String()})
}
