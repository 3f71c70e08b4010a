package finance

import (
	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/shared"
)

// PaymentRequestStatus tracks whether an admin has seen the request
type PaymentRequestStatus string

const (
	PaymentRequestPending      PaymentRequestStatus = "pending"
	PaymentRequestAcknowledged PaymentRequestStatus = "acknowledged"
)

// PaymentRequest records a tenant asking for their rent to be settled.
// It mirrors the payment_request_pending flag on the apartment so admins
// keep a row-level trail of who asked and when.
type PaymentRequest struct {
	shared.BaseAggregateRoot
	TenantID        uuid.UUID
	ApartmentNumber int
	Status          PaymentRequestStatus
}

// NewPaymentRequest creates a pending payment request
func NewPaymentRequest(tenantID uuid.UUID, apartmentNumber int) (*PaymentRequest, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Tenant ID cannot be empty")
	}
	if apartmentNumber <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Apartment number must be positive")
	}
	return &PaymentRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenantID:          tenantID,
		ApartmentNumber:   apartmentNumber,
		Status:            PaymentRequestPending,
	}, nil
}

// Acknowledge marks the request as seen by an admin
func (r *PaymentRequest) Acknowledge() {
	r.Status = PaymentRequestAcknowledged
	r.Touch()
	r.IncrementVersion()
}
