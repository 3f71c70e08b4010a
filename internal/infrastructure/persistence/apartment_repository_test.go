package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predio/backend/internal/domain/property"
	"github.com/predio/backend/internal/domain/shared"
	"github.com/predio/backend/internal/infrastructure/persistence/models"
)

func seedApartment(t *testing.T, repo *GormApartmentRepository, number int) *property.Apartment {
	t.Helper()
	apartment, err := property.NewApartment(number, decimal.NewFromInt(1500))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), apartment))
	return apartment
}

func TestGormApartmentRepository_FindByNumber(t *testing.T) {
	db := setupTestDB(t, &models.ApartmentModel{})
	repo := NewGormApartmentRepository(db)
	ctx := context.Background()

	seedApartment(t, repo, 101)

	t.Run("finds existing apartment", func(t *testing.T) {
		found, err := repo.FindByNumber(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, 101, found.Number)
		assert.Equal(t, property.OccupancyAvailable, found.Occupancy)
	})

	t.Run("returns ErrNotFound for unknown number", func(t *testing.T) {
		_, err := repo.FindByNumber(ctx, 999)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormApartmentRepository_Claim(t *testing.T) {
	ctx := context.Background()
	dueDate := time.Now().AddDate(0, 1, 0)

	t.Run("claims an available unit", func(t *testing.T) {
		db := setupTestDB(t, &models.ApartmentModel{})
		repo := NewGormApartmentRepository(db)
		apartment := seedApartment(t, repo, 101)

		tenantID := uuid.New()
		require.NoError(t, apartment.Assign(tenantID, dueDate))
		require.NoError(t, repo.Claim(ctx, apartment))

		found, err := repo.FindByNumber(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, property.OccupancyOccupied, found.Occupancy)
		assert.Equal(t, property.RentPending, found.RentStatus)
		require.NotNil(t, found.TenantID)
		assert.Equal(t, tenantID, *found.TenantID)
	})

	t.Run("second claim on the same unit loses", func(t *testing.T) {
		db := setupTestDB(t, &models.ApartmentModel{})
		repo := NewGormApartmentRepository(db)
		apartment := seedApartment(t, repo, 102)

		first := *apartment
		second := *apartment
		require.NoError(t, first.Assign(uuid.New(), dueDate))
		require.NoError(t, second.Assign(uuid.New(), dueDate))

		require.NoError(t, repo.Claim(ctx, &first))
		err := repo.Claim(ctx, &second)
		assert.ErrorIs(t, err, shared.ErrApartmentUnavailable)

		// The winner's tenant stays bound
		found, err := repo.FindByNumber(ctx, 102)
		require.NoError(t, err)
		assert.Equal(t, *first.TenantID, *found.TenantID)
	})
}

func TestGormApartmentRepository_Release(t *testing.T) {
	db := setupTestDB(t, &models.ApartmentModel{})
	repo := NewGormApartmentRepository(db)
	ctx := context.Background()

	apartment := seedApartment(t, repo, 103)
	tenantID := uuid.New()
	require.NoError(t, apartment.Assign(tenantID, time.Now().AddDate(0, 1, 0)))
	require.NoError(t, repo.Claim(ctx, apartment))

	t.Run("release clears the binding and rent fields", func(t *testing.T) {
		require.NoError(t, repo.Release(ctx, tenantID))

		found, err := repo.FindByNumber(ctx, 103)
		require.NoError(t, err)
		assert.Equal(t, property.OccupancyAvailable, found.Occupancy)
		assert.Nil(t, found.TenantID)
		assert.Nil(t, found.NextDueDate)
		assert.False(t, found.PaymentRequested)
	})

	t.Run("release for an unbound tenant is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Release(ctx, uuid.New()))
	})
}

func TestGormApartmentRepository_FindByOccupancy(t *testing.T) {
	db := setupTestDB(t, &models.ApartmentModel{})
	repo := NewGormApartmentRepository(db)
	ctx := context.Background()

	occupied := seedApartment(t, repo, 201)
	seedApartment(t, repo, 202)
	seedApartment(t, repo, 203)

	require.NoError(t, occupied.Assign(uuid.New(), time.Now().AddDate(0, 1, 0)))
	require.NoError(t, repo.Claim(ctx, occupied))

	available, err := repo.FindByOccupancy(ctx, property.OccupancyAvailable, shared.Filter{})
	require.NoError(t, err)
	assert.Len(t, available, 2)
	assert.Equal(t, 202, available[0].Number)
	assert.Equal(t, 203, available[1].Number)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
