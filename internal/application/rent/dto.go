package rent

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/predio/backend/internal/domain/property"
)

// UpdateStatusRequest is the admin input for a rent-status transition
type UpdateStatusRequest struct {
	Status     string           `json:"status" binding:"required"`
	AmountPaid *decimal.Decimal `json:"amount_paid,omitempty"`
}

// StatusResponse is the rent view of a unit after a transition
type StatusResponse struct {
	ApartmentNumber  int              `json:"apartment_number"`
	TenantID         *uuid.UUID       `json:"tenant_id,omitempty"`
	MonthlyRent      decimal.Decimal  `json:"monthly_rent"`
	RentStatus       string           `json:"rent_status"`
	NextDueDate      *time.Time       `json:"next_due_date,omitempty"`
	PaymentRequested bool             `json:"payment_requested"`
	AmountPaid       *decimal.Decimal `json:"amount_paid,omitempty"`
	RemainingBalance *decimal.Decimal `json:"remaining_balance,omitempty"`
}

// ToStatusResponse converts a domain Apartment to its rent view
func ToStatusResponse(apartment *property.Apartment) StatusResponse {
	return StatusResponse{
		ApartmentNumber:  apartment.Number,
		TenantID:         apartment.TenantID,
		MonthlyRent:      apartment.MonthlyRent,
		RentStatus:       string(apartment.RentStatus),
		NextDueDate:      apartment.NextDueDate,
		PaymentRequested: apartment.PaymentRequested,
		AmountPaid:       apartment.AmountPaid,
		RemainingBalance: apartment.RemainingBalance,
	}
}

// statusNotification maps every rent status to the tenant-facing message.
// The mapping is exhaustive over the four statuses.
func statusNotification(status property.RentStatus) (title, message, icon string) {
	switch status {
	case property.RentPaid:
		return "Rent payment confirmed", "Your rent for this period is settled. Thank you!", "check-circle"
	case property.RentPending:
		return "Rent payment pending", "Your rent for the current period is awaiting payment.", "clock"
	case property.RentOverdue:
		return "Rent payment overdue", "Your rent payment is past its due date. Please settle it soon.", "alert-circle"
	case property.RentPartial:
		return "Partial rent payment recorded", "A partial payment was recorded. The remaining balance is still due.", "pie-chart"
	default:
		return "Rent status updated", "Your rent status has changed.", "info"
	}
}
