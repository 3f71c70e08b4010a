package property

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/predio/backend/internal/domain/maintenance"
	"github.com/predio/backend/internal/domain/property"
	"github.com/predio/backend/internal/domain/shared"
)

type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) FindByNumber(ctx context.Context, number int) (*property.Apartment, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID) (*property.Apartment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Apartment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]property.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) FindByOccupancy(ctx context.Context, status property.OccupancyStatus, filter shared.Filter) ([]property.Apartment, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]property.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApartmentRepository) Save(ctx context.Context, apartment *property.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *MockApartmentRepository) Claim(ctx context.Context, apartment *property.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *MockApartmentRepository) Release(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) FindAll(ctx context.Context, filter shared.Filter) ([]maintenance.Complaint, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]maintenance.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]maintenance.Complaint, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]maintenance.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) FindByStatus(ctx context.Context, status maintenance.Status, filter shared.Filter) ([]maintenance.Complaint, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]maintenance.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) CountByStatus(ctx context.Context, status maintenance.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockComplaintRepository) Save(ctx context.Context, complaint *maintenance.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockComplaintRepository) DeleteByTenantID(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

func newServiceWithMocks() (*Service, *MockApartmentRepository, *MockComplaintRepository) {
	apartments := new(MockApartmentRepository)
	complaints := new(MockComplaintRepository)
	svc := NewService(apartments, complaints, nil, nil)
	return svc, apartments, complaints
}

func TestService_Seed(t *testing.T) {
	ctx := context.Background()
	svc, apartments, _ := newServiceWithMocks()

	existing, err := property.NewApartment(1, decimal.NewFromInt(1500))
	require.NoError(t, err)

	apartments.On("FindByNumber", ctx, 1).Return(existing, nil)
	apartments.On("FindByNumber", ctx, 2).Return(nil, shared.ErrNotFound)
	apartments.On("FindByNumber", ctx, 3).Return(nil, shared.ErrNotFound)
	apartments.On("Save", ctx, mock.AnythingOfType("*property.Apartment")).Return(nil)

	created, err := svc.Seed(ctx, 3, decimal.NewFromInt(1500))
	require.NoError(t, err)
	assert.Equal(t, 2, created, "only the missing units are created")
	apartments.AssertNumberOfCalls(t, "Save", 2)
}

func TestService_SetRent(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the monthly rent", func(t *testing.T) {
		svc, apartments, _ := newServiceWithMocks()
		apartment, err := property.NewApartment(5, decimal.NewFromInt(1500))
		require.NoError(t, err)

		apartments.On("FindByNumber", ctx, 5).Return(apartment, nil)
		apartments.On("Save", ctx, apartment).Return(nil)

		resp, err := svc.SetRent(ctx, 5, SetRentRequest{MonthlyRent: decimal.NewFromInt(1800)})
		require.NoError(t, err)
		assert.True(t, resp.MonthlyRent.Equal(decimal.NewFromInt(1800)))
	})

	t.Run("negative rent rejected before the lookup", func(t *testing.T) {
		svc, apartments, _ := newServiceWithMocks()

		_, err := svc.SetRent(ctx, 5, SetRentRequest{MonthlyRent: decimal.NewFromInt(-1)})
		assert.Error(t, err)
		apartments.AssertNotCalled(t, "FindByNumber", mock.Anything, mock.Anything)
	})
}

func TestService_Dashboard(t *testing.T) {
	ctx := context.Background()
	svc, apartments, complaints := newServiceWithMocks()

	vacant, err := property.NewApartment(1, decimal.NewFromInt(1500))
	require.NoError(t, err)

	occupied, err := property.NewApartment(2, decimal.NewFromInt(1500))
	require.NoError(t, err)
	require.NoError(t, occupied.Assign(uuid.New(), time.Now().AddDate(0, 1, 0)))

	overdue, err := property.NewApartment(3, decimal.NewFromInt(1500))
	require.NoError(t, err)
	require.NoError(t, overdue.Assign(uuid.New(), time.Now().AddDate(0, 1, 0)))
	require.NoError(t, overdue.SetRentStatus(property.RentOverdue))

	apartments.On("Count", ctx).Return(int64(3), nil)
	apartments.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).
		Return([]property.Apartment{*vacant, *occupied, *overdue}, nil)
	complaints.On("CountByStatus", ctx, maintenance.StatusNew).Return(int64(4), nil)

	summary, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalUnits)
	assert.Equal(t, 2, summary.OccupiedUnits)
	assert.Equal(t, 1, summary.VacantUnits)
	assert.Equal(t, 1, summary.OverdueUnits)
	assert.Equal(t, int64(4), summary.OpenComplaints)
}
