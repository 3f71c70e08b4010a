package lifecycle

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/predio/backend/internal/domain/finance"
	"github.com/predio/backend/internal/domain/property"
	"github.com/predio/backend/internal/domain/residency"
)

// OnboardTenantRequest is the input of the create-and-assign orchestration
type OnboardTenantRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	FullName        string `json:"full_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	ApartmentNumber int    `json:"apartment_number" binding:"required,gt=0"`
}

// ResetPasswordRequest is the input of the privileged password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// PaymentRequestInput is the input of the tenant payment request
type PaymentRequestInput struct {
	ApartmentNumber int `json:"apartment_number" binding:"required,gt=0"`
}

// TenantResponse is the admin view of a tenant and their unit
type TenantResponse struct {
	ID               uuid.UUID        `json:"id"`
	Email            string           `json:"email"`
	FullName         string           `json:"full_name"`
	Phone            string           `json:"phone"`
	ApartmentNumber  *int             `json:"apartment_number,omitempty"`
	MoveInDate       *time.Time       `json:"move_in_date,omitempty"`
	MonthlyRent      *decimal.Decimal `json:"monthly_rent,omitempty"`
	RentStatus       string           `json:"rent_status,omitempty"`
	NextDueDate      *time.Time       `json:"next_due_date,omitempty"`
	PaymentRequested bool             `json:"payment_requested"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ToTenantResponse builds a TenantResponse. The apartment is nil when the
// tenant has no bound unit.
func ToTenantResponse(profile *residency.Profile, apartment *property.Apartment) TenantResponse {
	resp := TenantResponse{
		ID:              profile.ID,
		Email:           profile.Email,
		FullName:        profile.FullName,
		Phone:           profile.Phone,
		ApartmentNumber: profile.ApartmentNumber,
		MoveInDate:      profile.MoveInDate,
		CreatedAt:       profile.CreatedAt,
	}
	if apartment != nil {
		rent := apartment.MonthlyRent
		resp.MonthlyRent = &rent
		resp.RentStatus = string(apartment.RentStatus)
		resp.NextDueDate = apartment.NextDueDate
		resp.PaymentRequested = apartment.PaymentRequested
	}
	return resp
}

// PaymentRequestResponse is the result of a tenant payment request
type PaymentRequestResponse struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	ApartmentNumber int       `json:"apartment_number"`
	Status          string    `json:"status"`
	RequestedAt     time.Time `json:"requested_at"`
}

// ToPaymentRequestResponse converts a domain PaymentRequest
func ToPaymentRequestResponse(request *finance.PaymentRequest) PaymentRequestResponse {
	return PaymentRequestResponse{
		ID:              request.ID,
		TenantID:        request.TenantID,
		ApartmentNumber: request.ApartmentNumber,
		Status:          string(request.Status),
		RequestedAt:     request.CreatedAt,
	}
}

// TenantCreatedEvent is the outbound webhook payload for a new tenant
type TenantCreatedEvent struct {
	TenantID        uuid.UUID `json:"tenant_id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone"`
	ApartmentNumber int       `json:"apartment_number"`
	CreatedAt       time.Time `json:"created_at"`
}
