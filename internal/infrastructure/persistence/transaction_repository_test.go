package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predio/backend/internal/domain/finance"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

func seedTransaction(t *testing.T, repo *GormTransactionRepository, txType finance.TransactionType, amount int64, when time.Time) *finance.Transaction {
	t.Helper()
	tx, err := finance.NewTransaction(txType, decimal.NewFromInt(amount), "rent", "", when)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tx))
	return tx
}

func TestGormTransactionRepository_SumByType(t *testing.T) {
	db := setupTestDB(t, &models.TransactionModel{})
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()

	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	february := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	seedTransaction(t, repo, finance.TransactionRevenue, 1500, january)
	seedTransaction(t, repo, finance.TransactionRevenue, 1500, february)
	seedTransaction(t, repo, finance.TransactionExpense, 400, january)

	t.Run("sums all revenue with open window", func(t *testing.T) {
		total, err := repo.SumByType(ctx, finance.TransactionRevenue, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(3000)), "got %s", total)
	})

	t.Run("window excludes the upper bound", func(t *testing.T) {
		total, err := repo.SumByType(ctx, finance.TransactionRevenue,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(1500)), "got %s", total)
	})

	t.Run("empty window sums to zero", func(t *testing.T) {
		total, err := repo.SumByType(ctx, finance.TransactionExpense,
			time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestGormTransactionRepository_FindByType(t *testing.T) {
	db := setupTestDB(t, &models.TransactionModel{})
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()

	seedTransaction(t, repo, finance.TransactionRevenue, 1500, time.Now())
	seedTransaction(t, repo, finance.TransactionExpense, 400, time.Now())

	revenues, err := repo.FindByType(ctx, finance.TransactionRevenue, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, revenues, 1)
	assert.Equal(t, finance.TransactionRevenue, revenues[0].Type)

	all, err := repo.FindAll(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGormTransactionRepository_Delete(t *testing.T) {
	db := setupTestDB(t, &models.TransactionModel{})
	repo := NewGormTransactionRepository(db)
	ctx := context.Background()

	tx := seedTransaction(t, repo, finance.TransactionExpense, 400, time.Now())

	require.NoError(t, repo.Delete(ctx, tx.ID))
	_, err := repo.FindByID(ctx, tx.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
