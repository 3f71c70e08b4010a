package finance

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/predio/backend/internal/domain/shared"
)

// TransactionType splits the ledger into money in and money out
type TransactionType string

const (
	TransactionRevenue TransactionType = "revenue"
	TransactionExpense TransactionType = "expense"
)

// ParseTransactionType maps a raw string to a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case TransactionRevenue:
		return TransactionRevenue, nil
	case TransactionExpense:
		return TransactionExpense, nil
	}
	return "", shared.NewDomainError("VALIDATION_ERROR", "Unknown transaction type")
}

// Transaction is a single financial ledger entry. Revenue rows are
// appended automatically when rent is marked paid; expense rows are
// entered manually by admins.
type Transaction struct {
	shared.BaseAggregateRoot
	Type            TransactionType
	Amount          decimal.Decimal
	Category        string
	Description     string
	TransactionDate time.Time
}

// NewTransaction creates a ledger entry
func NewTransaction(txType TransactionType, amount decimal.Decimal, category, description string, date time.Time) (*Transaction, error) {
	if _, err := ParseTransactionType(string(txType)); err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Amount must be positive")
	}
	if len(category) > 100 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Category cannot exceed 100 characters")
	}
	if date.IsZero() {
		date = time.Now()
	}
	return &Transaction{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              txType,
		Amount:            amount,
		Category:          strings.TrimSpace(category),
		Description:       strings.TrimSpace(description),
		TransactionDate:   date,
	}, nil
}

// Update replaces the mutable fields of a ledger entry, applying the
// same validation as creation
func (t *Transaction) Update(txType TransactionType, amount decimal.Decimal, category, description string, date time.Time) error {
	if _, err := ParseTransactionType(string(txType)); err != nil {
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("VALIDATION_ERROR", "Amount must be positive")
	}
	if len(category) > 100 {
		return shared.NewDomainError("VALIDATION_ERROR", "Category cannot exceed 100 characters")
	}
	if date.IsZero() {
		date = t.TransactionDate
	}
	t.Type = txType
	t.Amount = amount
	t.Category = strings.TrimSpace(category)
	t.Description = strings.TrimSpace(description)
	t.TransactionDate = date
	t.Touch()
	t.IncrementVersion()
	return nil
}

// NewRentRevenue creates the automatic revenue entry for a paid rent period
func NewRentRevenue(apartmentNumber int, amount decimal.Decimal) (*Transaction, error) {
	return NewTransaction(
		TransactionRevenue,
		amount,
		"rent",
		rentDescription(apartmentNumber),
		time.Now(),
	)
}

func rentDescription(apartmentNumber int) string {
	return "Rent payment - apartment " + strconv.Itoa(apartmentNumber)
}
