package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/predio/backend/internal/domain/finance"
)

// CreateTransactionRequest is the admin input for a manual ledger entry
type CreateTransactionRequest struct {
	Type            string          `json:"type" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// UpdateTransactionRequest is the admin input for correcting a ledger entry
type UpdateTransactionRequest struct {
	Type            string          `json:"type" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// TransactionResponse is the API view of a ledger entry
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToTransactionResponse converts a domain Transaction
func ToTransactionResponse(transaction *finance.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              transaction.ID,
		Type:            string(transaction.Type),
		Amount:          transaction.Amount,
		Category:        transaction.Category,
		Description:     transaction.Description,
		TransactionDate: transaction.TransactionDate,
		CreatedAt:       transaction.CreatedAt,
	}
}

// MonthlySummaryResponse aggregates the ledger for one calendar month
type MonthlySummaryResponse struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// PaymentRequestResponse is the API view of a payment request
type PaymentRequestResponse struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	ApartmentNumber int       `json:"apartment_number"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToPaymentRequestResponse converts a domain PaymentRequest
func ToPaymentRequestResponse(request *finance.PaymentRequest) PaymentRequestResponse {
	return PaymentRequestResponse{
		ID:              request.ID,
		TenantID:        request.TenantID,
		ApartmentNumber: request.ApartmentNumber,
		Status:          string(request.Status),
		CreatedAt:       request.CreatedAt,
	}
}
