package models

import (
	"time"

	"github.com/predio/backend/internal/domain/residency"
)

// ProfileModel is the persistence model for the Profile aggregate root
type ProfileModel struct {
	AggregateModel
	Email           string `gorm:"type:varchar(200);not null;uniqueIndex"`
	FullName        string `gorm:"type:varchar(200);not null"`
	Phone           string `gorm:"type:varchar(50);index"`
	PasswordHash    string `gorm:"type:varchar(100);not null"`
	Role            string `gorm:"type:varchar(20);not null;index"`
	AvatarKey       string `gorm:"type:varchar(500)"`
	ApartmentNumber *int   `gorm:"index"`
	MoveInDate      *time.Time
}

// TableName returns the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts the persistence model to a domain Profile
func (m *ProfileModel) ToDomain() *residency.Profile {
	return &residency.Profile{
		BaseAggregateRoot: m.ToDomainAggregate(),
		Email:             m.Email,
		FullName:          m.FullName,
		Phone:             m.Phone,
		PasswordHash:      m.PasswordHash,
		Role:              residency.Role(m.Role),
		AvatarKey:         m.AvatarKey,
		ApartmentNumber:   m.ApartmentNumber,
		MoveInDate:        m.MoveInDate,
	}
}

// FromDomain populates the persistence model from a domain Profile
func (m *ProfileModel) FromDomain(p *residency.Profile) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Email = p.Email
	m.FullName = p.FullName
	m.Phone = p.Phone
	m.PasswordHash = p.PasswordHash
	m.Role = string(p.Role)
	m.AvatarKey = p.AvatarKey
	m.ApartmentNumber = p.ApartmentNumber
	m.MoveInDate = p.MoveInDate
}

// ProfileModelFromDomain creates a new persistence model from a domain Profile
func ProfileModelFromDomain(p *residency.Profile) *ProfileModel {
	m := &ProfileModel{}
	m.FromDomain(p)
	return m
}
