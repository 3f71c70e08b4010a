package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/predio/backend/internal/domain/property"
)

// SetRentRequest changes the monthly rent of a unit
type SetRentRequest struct {
	MonthlyRent decimal.Decimal `json:"monthly_rent" binding:"required"`
}

// ApartmentResponse is the API view of a unit
type ApartmentResponse struct {
	Number           int              `json:"number"`
	MonthlyRent      decimal.Decimal  `json:"monthly_rent"`
	Occupancy        string           `json:"occupancy"`
	RentStatus       string           `json:"rent_status,omitempty"`
	TenantID         *uuid.UUID       `json:"tenant_id,omitempty"`
	NextDueDate      *time.Time       `json:"next_due_date,omitempty"`
	PaymentRequested bool             `json:"payment_requested"`
	AmountPaid       *decimal.Decimal `json:"amount_paid,omitempty"`
	RemainingBalance *decimal.Decimal `json:"remaining_balance,omitempty"`
}

// ToApartmentResponse converts a domain Apartment
func ToApartmentResponse(apartment *property.Apartment) ApartmentResponse {
	return ApartmentResponse{
		Number:           apartment.Number,
		MonthlyRent:      apartment.MonthlyRent,
		Occupancy:        string(apartment.Occupancy),
		RentStatus:       string(apartment.RentStatus),
		TenantID:         apartment.TenantID,
		NextDueDate:      apartment.NextDueDate,
		PaymentRequested: apartment.PaymentRequested,
		AmountPaid:       apartment.AmountPaid,
		RemainingBalance: apartment.RemainingBalance,
	}
}

// DashboardResponse is the admin landing-page summary
type DashboardResponse struct {
	TotalUnits     int64 `json:"total_units"`
	OccupiedUnits  int   `json:"occupied_units"`
	VacantUnits    int   `json:"vacant_units"`
	OverdueUnits   int   `json:"overdue_units"`
	OpenComplaints int64 `json:"open_complaints"`
}
