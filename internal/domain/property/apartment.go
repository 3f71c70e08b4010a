package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/predio/backend/internal/domain/shared"
)

// OccupancyStatus tells whether a unit currently has a tenant
type OccupancyStatus string

const (
	OccupancyAvailable OccupancyStatus = "available"
	OccupancyOccupied  OccupancyStatus = "occupied"
)

// RentStatus describes the current-period payment state of an occupied unit.
// The fields backing it are meaningless while the unit is vacant.
type RentStatus string

const (
	RentPaid    RentStatus = "paid"
	RentPending RentStatus = "pending"
	RentOverdue RentStatus = "overdue"
	RentPartial RentStatus = "partial"
)

// ValidRentStatus reports whether s is one of the four known statuses
func ValidRentStatus(s RentStatus) bool {
	switch s {
	case RentPaid, RentPending, RentOverdue, RentPartial:
		return true
	}
	return false
}

// Apartment is a unit record. The tenant reference is a weak link to a
// Profile, never ownership; at most one apartment may reference a given
// tenant id.
type Apartment struct {
	shared.BaseAggregateRoot
	Number           int
	MonthlyRent      decimal.Decimal
	Occupancy        OccupancyStatus
	RentStatus       RentStatus
	TenantID         *uuid.UUID
	NextDueDate      *time.Time
	PaymentRequested bool
	AmountPaid       *decimal.Decimal
	RemainingBalance *decimal.Decimal
}

// NewApartment creates a vacant unit with the given monthly rent
func NewApartment(number int, monthlyRent decimal.Decimal) (*Apartment, error) {
	if number <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Apartment number must be positive")
	}
	if monthlyRent.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Monthly rent cannot be negative")
	}
	return &Apartment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		MonthlyRent:       monthlyRent,
		Occupancy:         OccupancyAvailable,
	}, nil
}

// IsAvailable reports whether the unit is vacant
func (a *Apartment) IsAvailable() bool {
	return a.Occupancy == OccupancyAvailable
}

// Assign binds a tenant to the unit and starts the rent cycle.
// The repository enforces the available→occupied transition with a
// conditional write; this method only prepares the aggregate state.
func (a *Apartment) Assign(tenantID uuid.UUID, dueDate time.Time) error {
	if !a.IsAvailable() {
		return shared.ErrApartmentUnavailable
	}
	a.TenantID = &tenantID
	a.Occupancy = OccupancyOccupied
	a.RentStatus = RentPending
	a.NextDueDate = &dueDate
	a.PaymentRequested = false
	a.AmountPaid = nil
	a.RemainingBalance = nil
	a.Touch()
	a.IncrementVersion()
	return nil
}

// Vacate resets the unit to available and clears every rent field
func (a *Apartment) Vacate() {
	a.TenantID = nil
	a.Occupancy = OccupancyAvailable
	a.RentStatus = ""
	a.NextDueDate = nil
	a.PaymentRequested = false
	a.AmountPaid = nil
	a.RemainingBalance = nil
	a.Touch()
	a.IncrementVersion()
}

// MarkPaid sets the rent status to paid and clears the pending payment
// request and any stale partial-payment fields. The caller appends the
// matching revenue ledger entry.
func (a *Apartment) MarkPaid() error {
	if a.IsAvailable() {
		return shared.NewDomainError("VALIDATION_ERROR", "Cannot set rent status on a vacant apartment")
	}
	a.RentStatus = RentPaid
	a.PaymentRequested = false
	a.AmountPaid = nil
	a.RemainingBalance = nil
	a.Touch()
	a.IncrementVersion()
	return nil
}

// MarkPartial records a partial payment. When the remaining balance is
// zero or negative the effective stored status becomes paid instead.
func (a *Apartment) MarkPartial(amountPaid decimal.Decimal) error {
	if a.IsAvailable() {
		return shared.NewDomainError("VALIDATION_ERROR", "Cannot set rent status on a vacant apartment")
	}
	if amountPaid.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Amount paid cannot be negative")
	}
	remaining := a.MonthlyRent.Sub(amountPaid)
	if remaining.LessThanOrEqual(decimal.Zero) {
		return a.MarkPaid()
	}
	a.RentStatus = RentPartial
	a.AmountPaid = &amountPaid
	a.RemainingBalance = &remaining
	a.Touch()
	a.IncrementVersion()
	return nil
}

// SetRentStatus applies a pending or overdue transition. Paid and partial
// go through MarkPaid/MarkPartial because they carry extra bookkeeping.
func (a *Apartment) SetRentStatus(status RentStatus) error {
	if a.IsAvailable() {
		return shared.NewDomainError("VALIDATION_ERROR", "Cannot set rent status on a vacant apartment")
	}
	switch status {
	case RentPending, RentOverdue:
		a.RentStatus = status
		a.AmountPaid = nil
		a.RemainingBalance = nil
		a.Touch()
		a.IncrementVersion()
		return nil
	case RentPaid, RentPartial:
		return shared.NewDomainError("VALIDATION_ERROR", "Status requires the dedicated transition")
	default:
		return shared.NewDomainError("VALIDATION_ERROR", "Unknown rent status")
	}
}

// RequestPayment flags the unit as having a pending tenant payment request
func (a *Apartment) RequestPayment() error {
	if a.IsAvailable() {
		return shared.NewDomainError("VALIDATION_ERROR", "Cannot request payment for a vacant apartment")
	}
	a.PaymentRequested = true
	a.Touch()
	a.IncrementVersion()
	return nil
}

// IsOccupiedBy reports whether the unit is bound to the given tenant
func (a *Apartment) IsOccupiedBy(tenantID uuid.UUID) bool {
	return a.TenantID != nil && *a.TenantID == tenantID
}

// IsOverdueAt reports whether a pending unit has passed its due date
func (a *Apartment) IsOverdueAt(now time.Time) bool {
	return a.RentStatus == RentPending && a.NextDueDate != nil && now.After(*a.NextDueDate)
}
