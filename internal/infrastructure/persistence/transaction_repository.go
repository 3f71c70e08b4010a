package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/predio/backend/internal/domain/finance"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByID finds a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all transactions matching the filter
func (r *GormTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Transaction, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "transaction_date"
	}
	query := r.db.WithContext(ctx).Model(&models.TransactionModel{})
	return r.findTransactions(applyListFilter(query, filter))
}

// FindByType finds transactions of the given type
func (r *GormTransactionRepository) FindByType(ctx context.Context, txType finance.TransactionType, filter shared.Filter) ([]finance.Transaction, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "transaction_date"
	}
	query := r.db.WithContext(ctx).Model(&models.TransactionModel{}).Where("type = ?", txType)
	return r.findTransactions(applyListFilter(query, filter))
}

// SumByType sums transaction amounts of a type within [from, to)
func (r *GormTransactionRepository) SumByType(ctx context.Context, txType finance.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	query := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("type = ?", txType)
	if !from.IsZero() {
		query = query.Where("transaction_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("transaction_date < ?", to)
	}
	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Save creates or updates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, transaction *finance.Transaction) error {
	model := models.TransactionModelFromDomain(transaction)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a transaction
func (r *GormTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormTransactionRepository) findTransactions(query *gorm.DB) ([]finance.Transaction, error) {
	var transactionModels []models.TransactionModel
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	transactions := make([]finance.Transaction, len(transactionModels))
	for i, model := range transactionModels {
		transactions[i] = *model.ToDomain()
	}
	return transactions, nil
}

// Ensure GormTransactionRepository implements TransactionRepository
var _ finance.TransactionRepository = (*GormTransactionRepository)(nil)
