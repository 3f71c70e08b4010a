package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/predio/backend/internal/domain/finance"
)

// TransactionModel is the persistence model for the Transaction ledger entry
type TransactionModel struct {
	AggregateModel
	Type            string          `gorm:"type:varchar(20);not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category        string          `gorm:"type:varchar(100);index"`
	Description     string          `gorm:"type:varchar(500)"`
	TransactionDate time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction
func (m *TransactionModel) ToDomain() *finance.Transaction {
	return &finance.Transaction{
		BaseAggregateRoot: m.ToDomainAggregate(),
		Type:              finance.TransactionType(m.Type),
		Amount:            m.Amount,
		Category:          m.Category,
		Description:       m.Description,
		TransactionDate:   m.TransactionDate,
	}
}

// FromDomain populates the persistence model from a domain Transaction
func (m *TransactionModel) FromDomain(t *finance.Transaction) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Type = string(t.Type)
	m.Amount = t.Amount
	m.Category = t.Category
	m.Description = t.Description
	m.TransactionDate = t.TransactionDate
}

// TransactionModelFromDomain creates a new persistence model from a domain Transaction
func TransactionModelFromDomain(t *finance.Transaction) *TransactionModel {
	m := &TransactionModel{}
	m.FromDomain(t)
	return m
}

// PaymentRequestModel is the persistence model for the PaymentRequest aggregate root
type PaymentRequestModel struct {
	AggregateModel
	TenantID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ApartmentNumber int       `gorm:"not null;index"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (PaymentRequestModel) TableName() string {
	return "payment_requests"
}

// ToDomain converts the persistence model to a domain PaymentRequest
func (m *PaymentRequestModel) ToDomain() *finance.PaymentRequest {
	return &finance.PaymentRequest{
		BaseAggregateRoot: m.ToDomainAggregate(),
		TenantID:          m.TenantID,
		ApartmentNumber:   m.ApartmentNumber,
		Status:            finance.PaymentRequestStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain PaymentRequest
func (m *PaymentRequestModel) FromDomain(r *finance.PaymentRequest) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.TenantID = r.TenantID
	m.ApartmentNumber = r.ApartmentNumber
	m.Status = string(r.Status)
}

// PaymentRequestModelFromDomain creates a new persistence model from a domain PaymentRequest
func PaymentRequestModelFromDomain(r *finance.PaymentRequest) *PaymentRequestModel {
	m := &PaymentRequestModel{}
	m.FromDomain(r)
	return m
}
