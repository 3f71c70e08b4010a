package models

import (
	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/maintenance"
)

// ComplaintModel is the persistence model for the Complaint aggregate root
type ComplaintModel struct {
	AggregateModel
	TenantID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ApartmentNumber int       `gorm:"not null;index"`
	Category        string    `gorm:"type:varchar(30);not null;index"`
	Description     string    `gorm:"type:varchar(2000);not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'new';index"`
}

// TableName returns the table name for GORM
func (ComplaintModel) TableName() string {
	return "complaints"
}

// ToDomain converts the persistence model to a domain Complaint
func (m *ComplaintModel) ToDomain() *maintenance.Complaint {
	return &maintenance.Complaint{
		BaseAggregateRoot: m.ToDomainAggregate(),
		TenantID:          m.TenantID,
		ApartmentNumber:   m.ApartmentNumber,
		Category:          maintenance.Category(m.Category),
		Description:       m.Description,
		Status:            maintenance.Status(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Complaint
func (m *ComplaintModel) FromDomain(c *maintenance.Complaint) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.TenantID = c.TenantID
	m.ApartmentNumber = c.ApartmentNumber
	m.Category = string(c.Category)
	m.Description = c.Description
	m.Status = string(c.Status)
}

// ComplaintModelFromDomain creates a new persistence model from a domain Complaint
func ComplaintModelFromDomain(c *maintenance.Complaint) *ComplaintModel {
	m := &ComplaintModel{}
	m.FromDomain(c)
	return m
}
