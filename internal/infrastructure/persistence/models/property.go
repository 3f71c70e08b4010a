package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/predio/backend/internal/domain/property"
)

// ApartmentModel is the persistence model for the Apartment aggregate root
type ApartmentModel struct {
	AggregateModel
	Number           int             `gorm:"not null;uniqueIndex"`
	MonthlyRent      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Occupancy        string          `gorm:"type:varchar(20);not null;default:'available';index"`
	RentStatus       string          `gorm:"type:varchar(20)"`
	TenantID         *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	NextDueDate      *time.Time
	PaymentRequested bool `gorm:"not null;default:false"`
	AmountPaid       *decimal.Decimal `gorm:"type:decimal(12,2)"`
	RemainingBalance *decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName returns the table name for GORM
func (ApartmentModel) TableName() string {
	return "apartments"
}

// ToDomain converts the persistence model to a domain Apartment
func (m *ApartmentModel) ToDomain() *property.Apartment {
	return &property.Apartment{
		BaseAggregateRoot: m.ToDomainAggregate(),
		Number:            m.Number,
		MonthlyRent:       m.MonthlyRent,
		Occupancy:         property.OccupancyStatus(m.Occupancy),
		RentStatus:        property.RentStatus(m.RentStatus),
		TenantID:          m.TenantID,
		NextDueDate:       m.NextDueDate,
		PaymentRequested:  m.PaymentRequested,
		AmountPaid:        m.AmountPaid,
		RemainingBalance:  m.RemainingBalance,
	}
}

// FromDomain populates the persistence model from a domain Apartment
func (m *ApartmentModel) FromDomain(a *property.Apartment) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Number = a.Number
	m.MonthlyRent = a.MonthlyRent
	m.Occupancy = string(a.Occupancy)
	m.RentStatus = string(a.RentStatus)
	m.TenantID = a.TenantID
	m.NextDueDate = a.NextDueDate
	m.PaymentRequested = a.PaymentRequested
	m.AmountPaid = a.AmountPaid
	m.RemainingBalance = a.RemainingBalance
}

// ApartmentModelFromDomain creates a new persistence model from a domain Apartment
func ApartmentModelFromDomain(a *property.Apartment) *ApartmentModel {
	m := &ApartmentModel{}
	m.FromDomain(a)
	return m
}
