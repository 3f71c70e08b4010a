package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	tx, err := NewTransaction(TransactionExpense, decimal.NewFromInt(250), "maintenance", "Elevator service", time.Now())
	require.NoError(t, err)
	assert.Equal(t, TransactionExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(250)))
}

func TestNewTransactionValidation(t *testing.T) {
	_, err := NewTransaction(TransactionType("transfer"), decimal.NewFromInt(10), "", "", time.Now())
	assert.Error(t, err)

	_, err = NewTransaction(TransactionRevenue, decimal.Zero, "", "", time.Now())
	assert.Error(t, err)

	_, err = NewTransaction(TransactionRevenue, decimal.NewFromInt(-5), "", "", time.Now())
	assert.Error(t, err)
}

func TestNewTransactionDefaultsDate(t *testing.T) {
	tx, err := NewTransaction(TransactionRevenue, decimal.NewFromInt(10), "rent", "", time.Time{})
	require.NoError(t, err)
	assert.False(t, tx.TransactionDate.IsZero())
}

func TestTransactionUpdate(t *testing.T) {
	tx, err := NewTransaction(TransactionExpense, decimal.NewFromInt(250), "maintenance", "Elevator service", time.Now())
	require.NoError(t, err)
	version := tx.Version

	require.NoError(t, tx.Update(TransactionExpense, decimal.NewFromInt(420), "repairs", "Revised invoice", time.Time{}))
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(420)))
	assert.Equal(t, "repairs", tx.Category)
	assert.Equal(t, version+1, tx.Version)

	err = tx.Update(TransactionType("transfer"), decimal.NewFromInt(10), "", "", time.Now())
	assert.Error(t, err)

	err = tx.Update(TransactionExpense, decimal.Zero, "", "", time.Now())
	assert.Error(t, err)
}

func TestNewRentRevenue(t *testing.T) {
	tx, err := NewRentRevenue(5, decimal.NewFromInt(1800))
	require.NoError(t, err)
	assert.Equal(t, TransactionRevenue, tx.Type)
	assert.Equal(t, "rent", tx.Category)
	assert.Contains(t, tx.Description, "apartment 5")
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(1800)))
}
