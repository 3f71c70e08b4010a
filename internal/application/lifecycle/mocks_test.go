package lifecycle

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/predio/backend/internal/domain/audit"
	"github.com/predio/backend/internal/domain/finance"
	"github.com/predio/backend/internal/domain/maintenance"
	"github.com/predio/backend/internal/domain/messaging"
	"github.com/predio/backend/internal/domain/property"
	"github.com/predio/backend/internal/domain/residency"
	"github.com/predio/backend/internal/domain/shared"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*residency.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*residency.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*residency.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*residency.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByPhoneSuffix(ctx context.Context, suffix string) (*residency.Profile, error) {
	args := m.Called(ctx, suffix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*residency.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]residency.Profile, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]residency.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByRole(ctx context.Context, role residency.Role, filter shared.Filter) ([]residency.Profile, error) {
	args := m.Called(ctx, role, filter)
	return args.Get(0).([]residency.Profile), args.Error(1)
}

func (m *MockProfileRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *residency.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockApartmentRepository is a mock implementation of ApartmentRepository
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

// MockComplaintRepository is a mock implementation of ComplaintRepository
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

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*messaging.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]messaging.Notification, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]messaging.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, notification *messaging.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteByTenantID(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

// MockPaymentRequestRepository is a mock implementation of PaymentRequestRepository
type MockPaymentRequestRepository struct {
	mock.Mock
}

func (m *MockPaymentRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.PaymentRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.PaymentRequest), args.Error(1)
}

func (m *MockPaymentRequestRepository) FindPending(ctx context.Context, filter shared.Filter) ([]finance.PaymentRequest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]finance.PaymentRequest), args.Error(1)
}

func (m *MockPaymentRequestRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.PaymentRequest, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]finance.PaymentRequest), args.Error(1)
}

func (m *MockPaymentRequestRepository) Save(ctx context.Context, request *finance.PaymentRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockPaymentRequestRepository) DeleteByTenantID(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

// MockAppLogRepository is a mock implementation of AppLogRepository
type MockAppLogRepository struct {
	mock.Mock
}

func (m *MockAppLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]audit.AppLog, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]audit.AppLog), args.Error(1)
}

func (m *MockAppLogRepository) FindByLevel(ctx context.Context, level audit.Level, filter shared.Filter) ([]audit.AppLog, error) {
	args := m.Called(ctx, level, filter)
	return args.Get(0).([]audit.AppLog), args.Error(1)
}

func (m *MockAppLogRepository) Save(ctx context.Context, log *audit.AppLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAppLogRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockDocumentCleaner is a mock implementation of DocumentCleaner
type MockDocumentCleaner struct {
	mock.Mock
}

func (m *MockDocumentCleaner) Delete(ctx context.Context, tenantID uuid.UUID, key string) error {
	args := m.Called(ctx, tenantID, key)
	return args.Error(0)
}

func (m *MockDocumentCleaner) DeleteAllForTenant(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

func (m *MockDocumentCleaner) RemoveAvatar(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockWebhookNotifier is a mock implementation of WebhookNotifier
type MockWebhookNotifier struct {
	mock.Mock
}

func (m *MockWebhookNotifier) TenantCreated(ctx context.Context, payload interface{}) {
	m.Called(ctx, payload)
}
