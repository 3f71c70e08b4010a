package rent

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/predio/backend/internal/domain/finance"
	"github.com/predio/backend/internal/domain/messaging"
	"github.com/predio/backend/internal/domain/property"
	"github.com/predio/backend/internal/domain/shared"
)

func newServiceWithMocks() (*Service, *MockApartmentRepository, *MockTransactionRepository, *MockNotificationRepository) {
	apartments := new(MockApartmentRepository)
	transactions := new(MockTransactionRepository)
	notifications := new(MockNotificationRepository)
	svc := NewService(apartments, transactions, notifications, nil, nil)
	return svc, apartments, transactions, notifications
}

func occupiedUnit(t *testing.T, number int, rent int64) (*property.Apartment, uuid.UUID) {
	t.Helper()
	apartment, err := property.NewApartment(number, decimal.NewFromInt(rent))
	require.NoError(t, err)
	tenantID := uuid.New()
	require.NoError(t, apartment.Assign(tenantID, time.Now().AddDate(0, 1, 0)))
	return apartment, tenantID
}

func TestService_SetStatus_Paid(t *testing.T) {
	ctx := context.Background()
	svc, apartments, transactions, notifications := newServiceWithMocks()
	apartment, tenantID := occupiedUnit(t, 5, 1800)
	require.NoError(t, apartment.RequestPayment())

	apartments.On("FindByNumber", ctx, 5).Return(apartment, nil)
	apartments.On("Save", ctx, apartment).Return(nil)

	var captured *finance.Transaction
	transactions.On("Save", ctx, mock.AnythingOfType("*finance.Transaction")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*finance.Transaction)
		}).Return(nil)

	var notified *messaging.Notification
	notifications.On("Save", ctx, mock.AnythingOfType("*messaging.Notification")).
		Run(func(args mock.Arguments) {
			notified = args.Get(1).(*messaging.Notification)
		}).Return(nil)

	resp, err := svc.SetStatus(ctx, 5, UpdateStatusRequest{Status: "paid"})
	require.NoError(t, err)

	assert.Equal(t, "paid", resp.RentStatus)
	assert.False(t, resp.PaymentRequested, "payment request flag is cleared")

	require.NotNil(t, captured, "exactly one revenue entry appended")
	assert.Equal(t, finance.TransactionRevenue, captured.Type)
	assert.True(t, captured.Amount.Equal(decimal.NewFromInt(1800)))
	transactions.AssertNumberOfCalls(t, "Save", 1)

	require.NotNil(t, notified)
	assert.Equal(t, tenantID, notified.TenantID)
	assert.Equal(t, "check-circle", notified.Icon)
}

func TestService_SetStatus_Partial(t *testing.T) {
	ctx := context.Background()

	t.Run("records amount and remaining balance", func(t *testing.T) {
		svc, apartments, transactions, notifications := newServiceWithMocks()
		apartment, _ := occupiedUnit(t, 5, 1800)

		apartments.On("FindByNumber", ctx, 5).Return(apartment, nil)
		apartments.On("Save", ctx, apartment).Return(nil)
		notifications.On("Save", ctx, mock.AnythingOfType("*messaging.Notification")).Return(nil)

		amount := decimal.NewFromInt(1000)
		resp, err := svc.SetStatus(ctx, 5, UpdateStatusRequest{Status: "partial", AmountPaid: &amount})
		require.NoError(t, err)

		assert.Equal(t, "partial", resp.RentStatus)
		require.NotNil(t, resp.RemainingBalance)
		assert.True(t, resp.RemainingBalance.Equal(decimal.NewFromInt(800)))
		transactions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("amount covering the rent stores paid and appends revenue", func(t *testing.T) {
		svc, apartments, transactions, notifications := newServiceWithMocks()
		apartment, _ := occupiedUnit(t, 5, 1800)

		apartments.On("FindByNumber", ctx, 5).Return(apartment, nil)
		apartments.On("Save", ctx, apartment).Return(nil)
		transactions.On("Save", ctx, mock.AnythingOfType("*finance.Transaction")).Return(nil)
		notifications.On("Save", ctx, mock.AnythingOfType("*messaging.Notification")).Return(nil)

		amount := decimal.NewFromInt(2000)
		resp, err := svc.SetStatus(ctx, 5, UpdateStatusRequest{Status: "partial", AmountPaid: &amount})
		require.NoError(t, err)

		assert.Equal(t, "paid", resp.RentStatus)
		assert.Nil(t, resp.AmountPaid)
		transactions.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("missing amount is rejected", func(t *testing.T) {
		svc, apartments, _, _ := newServiceWithMocks()
		apartment, _ := occupiedUnit(t, 5, 1800)
		apartments.On("FindByNumber", ctx, 5).Return(apartment, nil)

		_, err := svc.SetStatus(ctx, 5, UpdateStatusRequest{Status: "partial"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})
}

func TestService_SetStatus_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown status rejected without a lookup", func(t *testing.T) {
		svc, apartments, _, _ := newServiceWithMocks()

		_, err := svc.SetStatus(ctx, 5, UpdateStatusRequest{Status: "settled"})
		assert.Error(t, err)
		apartments.AssertNotCalled(t, "FindByNumber", mock.Anything, mock.Anything)
	})

	t.Run("vacant unit rejected", func(t *testing.T) {
		svc, apartments, _, _ := newServiceWithMocks()
		apartment, err := property.NewApartment(5, decimal.NewFromInt(1800))
		require.NoError(t, err)
		apartments.On("FindByNumber", ctx, 5).Return(apartment, nil)

		_, err = svc.SetStatus(ctx, 5, UpdateStatusRequest{Status: "pending"})
		assert.Error(t, err)
	})
}

func TestService_SweepOverdue(t *testing.T) {
	ctx := context.Background()
	svc, apartments, _, notifications := newServiceWithMocks()

	now := time.Now()
	pastDue, _ := occupiedUnit(t, 1, 1500)
	due := now.AddDate(0, 0, -3)
	pastDue.NextDueDate = &due

	current, _ := occupiedUnit(t, 2, 1500)

	apartments.On("FindByOccupancy", ctx, property.OccupancyOccupied, mock.AnythingOfType("shared.Filter")).
		Return([]property.Apartment{*pastDue, *current}, nil)
	apartments.On("Save", ctx, mock.AnythingOfType("*property.Apartment")).Return(nil)
	notifications.On("Save", ctx, mock.AnythingOfType("*messaging.Notification")).Return(nil)

	swept, err := svc.SweepOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	apartments.AssertNumberOfCalls(t, "Save", 1)
}
