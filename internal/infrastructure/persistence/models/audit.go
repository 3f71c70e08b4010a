package models

import (
	"github.com/predio/backend/internal/domain/audit"
)

// AppLogModel is the persistence model for the append-only AppLog record
type AppLogModel struct {
	BaseModel
	Level   string `gorm:"type:varchar(10);not null;index"`
	Source  string `gorm:"type:varchar(100);not null;index"`
	Message string `gorm:"type:varchar(2000);not null"`
	Detail  []byte `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (AppLogModel) TableName() string {
	return "app_logs"
}

// ToDomain converts the persistence model to a domain AppLog
func (m *AppLogModel) ToDomain() *audit.AppLog {
	return &audit.AppLog{
		BaseEntity: m.BaseModel.ToDomain(),
		Level:      audit.Level(m.Level),
		Source:     m.Source,
		Message:    m.Message,
		Detail:     m.Detail,
	}
}

// AppLogModelFromDomain creates a new persistence model from a domain AppLog
func AppLogModelFromDomain(l *audit.AppLog) *AppLogModel {
	m := &AppLogModel{}
	m.FromDomainBaseEntity(l.BaseEntity)
	m.Level = string(l.Level)
	m.Source = l.Source
	m.Message = l.Message
	m.Detail = l.Detail
	return m
}
