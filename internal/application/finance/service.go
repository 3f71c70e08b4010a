// Package finance implements the revenue/expense ledger and the admin view
// of tenant payment requests.
package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/predio/backend/internal/domain/finance"
	"github.com/predio/backend/internal/domain/shared"
)

// Service manages ledger entries and payment requests
type Service struct {
	transactionRepo    finance.TransactionRepository
	paymentRequestRepo finance.PaymentRequestRepository
	publisher          shared.ChangePublisher
	logger             *zap.Logger
}

// NewService creates a finance Service
func NewService(
	transactionRepo finance.TransactionRepository,
	paymentRequestRepo finance.PaymentRequestRepository,
	publisher shared.ChangePublisher,
	logger *zap.Logger,
) *Service {
	if publisher == nil {
		publisher = shared.NopChangePublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		transactionRepo:    transactionRepo,
		paymentRequestRepo: paymentRequestRepo,
		publisher:          publisher,
		logger:             logger,
	}
}

// CreateTransaction records a manual ledger entry
func (s *Service) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*TransactionResponse, error) {
	txType, err := finance.ParseTransactionType(req.Type)
	if err != nil {
		return nil, err
	}

	transaction, err := finance.NewTransaction(txType, req.Amount, req.Category, req.Description, req.TransactionDate)
	if err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		s.logger.Error("Failed to save transaction", zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "transactions", Action: shared.ChangeInsert, RowID: transaction.ID.String()})

	resp := ToTransactionResponse(transaction)
	return &resp, nil
}

// UpdateTransaction corrects an existing ledger entry
func (s *Service) UpdateTransaction(ctx context.Context, id uuid.UUID, req UpdateTransactionRequest) (*TransactionResponse, error) {
	txType, err := finance.ParseTransactionType(req.Type)
	if err != nil {
		return nil, err
	}

	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := transaction.Update(txType, req.Amount, req.Category, req.Description, req.TransactionDate); err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		s.logger.Error("Failed to update transaction",
			zap.String("id", id.String()), zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "transactions", Action: shared.ChangeUpdate, RowID: transaction.ID.String()})

	resp := ToTransactionResponse(transaction)
	return &resp, nil
}

// ListTransactions returns ledger entries for the dashboard
func (s *Service) ListTransactions(ctx context.Context, filter shared.Filter) ([]TransactionResponse, error) {
	transactions, err := s.transactionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses, nil
}

// DeleteTransaction removes a ledger entry
func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "transactions", Action: shared.ChangeDelete, RowID: id.String()})
	return nil
}

// MonthlySummary sums revenue and expense for one calendar month
func (s *Service) MonthlySummary(ctx context.Context, year int, month time.Month) (*MonthlySummaryResponse, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	revenue, err := s.transactionRepo.SumByType(ctx, finance.TransactionRevenue, from, to)
	if err != nil {
		return nil, err
	}
	expense, err := s.transactionRepo.SumByType(ctx, finance.TransactionExpense, from, to)
	if err != nil {
		return nil, err
	}

	return &MonthlySummaryResponse{
		Year:    year,
		Month:   int(month),
		Revenue: revenue,
		Expense: expense,
		Balance: revenue.Sub(expense),
	}, nil
}

// ListPendingPaymentRequests returns requests awaiting an admin
func (s *Service) ListPendingPaymentRequests(ctx context.Context, filter shared.Filter) ([]PaymentRequestResponse, error) {
	requests, err := s.paymentRequestRepo.FindPending(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]PaymentRequestResponse, len(requests))
	for i := range requests {
		responses[i] = ToPaymentRequestResponse(&requests[i])
	}
	return responses, nil
}

// AcknowledgePaymentRequest marks a request as seen
func (s *Service) AcknowledgePaymentRequest(ctx context.Context, id uuid.UUID) (*PaymentRequestResponse, error) {
	request, err := s.paymentRequestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	request.Acknowledge()
	if err := s.paymentRequestRepo.Save(ctx, request); err != nil {
		return nil, shared.ErrStoreWrite
	}

	s.publisher.Publish(ctx, shared.ChangeEvent{Table: "payment_requests", Action: shared.ChangeUpdate, RowID: request.ID.String()})

	resp := ToPaymentRequestResponse(request)
	return &resp, nil
}
