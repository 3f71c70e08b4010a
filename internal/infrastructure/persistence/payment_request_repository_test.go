package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predio/backend/internal/domain/finance"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

func TestGormPaymentRequestRepository_FindPending(t *testing.T) {
	db := setupTestDB(t, &models.PaymentRequestModel{})
	repo := NewGormPaymentRequestRepository(db)
	ctx := context.Background()

	first, err := finance.NewPaymentRequest(uuid.New(), 101)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := finance.NewPaymentRequest(uuid.New(), 102)
	require.NoError(t, err)
	second.Acknowledge()
	require.NoError(t, repo.Save(ctx, second))

	pending, err := repo.FindPending(ctx, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 101, pending[0].ApartmentNumber)
}

func TestGormPaymentRequestRepository_DeleteByTenantID(t *testing.T) {
	db := setupTestDB(t, &models.PaymentRequestModel{})
	repo := NewGormPaymentRequestRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	request, err := finance.NewPaymentRequest(tenantID, 101)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, request))

	other, err := finance.NewPaymentRequest(uuid.New(), 102)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	require.NoError(t, repo.DeleteByTenantID(ctx, tenantID))

	remaining, err := repo.FindByTenantID(ctx, tenantID, shared.Filter{})
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 102, kept.ApartmentNumber)
}
