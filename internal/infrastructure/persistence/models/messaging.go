package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/predio/backend/internal/domain/messaging"
)

// NotificationModel is the persistence model for the Notification aggregate root
type NotificationModel struct {
	AggregateModel
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Message     string    `gorm:"type:varchar(1000)"`
	Icon        string    `gorm:"type:varchar(50)"`
	Read        bool      `gorm:"not null;default:false;index"`
	Dismissible bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification
func (m *NotificationModel) ToDomain() *messaging.Notification {
	return &messaging.Notification{
		BaseAggregateRoot: m.ToDomainAggregate(),
		TenantID:          m.TenantID,
		Title:             m.Title,
		Message:           m.Message,
		Icon:              m.Icon,
		Read:              m.Read,
		Dismissible:       m.Dismissible,
	}
}

// FromDomain populates the persistence model from a domain Notification
func (m *NotificationModel) FromDomain(n *messaging.Notification) {
	m.FromDomainAggregateRoot(n.BaseAggregateRoot)
	m.TenantID = n.TenantID
	m.Title = n.Title
	m.Message = n.Message
	m.Icon = n.Icon
	m.Read = n.Read
	m.Dismissible = n.Dismissible
}

// NotificationModelFromDomain creates a new persistence model from a domain Notification
func NotificationModelFromDomain(n *messaging.Notification) *NotificationModel {
	m := &NotificationModel{}
	m.FromDomain(n)
	return m
}

// AnnouncementModel is the persistence model for the singleton Announcement
type AnnouncementModel struct {
	ID        string    `gorm:"type:varchar(50);primary_key"`
	Content   string    `gorm:"type:varchar(5000)"`
	Active    bool      `gorm:"not null;default:false"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AnnouncementModel) TableName() string {
	return "announcements"
}

// ToDomain converts the persistence model to a domain Announcement
func (m *AnnouncementModel) ToDomain() *messaging.Announcement {
	return &messaging.Announcement{
		ID:        m.ID,
		Content:   m.Content,
		Active:    m.Active,
		UpdatedAt: m.UpdatedAt,
	}
}

// AnnouncementModelFromDomain creates a new persistence model from a domain Announcement
func AnnouncementModelFromDomain(a *messaging.Announcement) *AnnouncementModel {
	return &AnnouncementModel{
		ID:        a.ID,
		Content:   a.Content,
		Active:    a.Active,
		UpdatedAt: a.UpdatedAt,
	}
}
