package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/predio/backend/internal/domain/shared"
)

// TransactionRepository defines persistence operations for ledger entries
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Transaction, error)
	FindByType(ctx context.Context, txType TransactionType, filter shared.Filter) ([]Transaction, error)
	SumByType(ctx context.Context, txType TransactionType, from, to time.Time) (decimal.Decimal, error)
	Save(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRequestRepository defines persistence operations for payment requests
type PaymentRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentRequest, error)
	FindPending(ctx context.Context, filter shared.Filter) ([]PaymentRequest, error)
	FindByTenantID(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]PaymentRequest, error)
	Save(ctx context.Context, request *PaymentRequest) error
	DeleteByTenantID(ctx context.Context, tenantID uuid.UUID) error
}
