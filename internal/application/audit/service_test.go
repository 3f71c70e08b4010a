package audit

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/predio/backend/internal/domain/audit"
	"github.com/predio/backend/internal/domain/shared"
)

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

func TestService_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("records an entry with detail payload", func(t *testing.T) {
		repo := new(MockAppLogRepository)
		svc := NewService(repo, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*audit.AppLog")).Return(nil)

		resp, err := svc.Append(ctx, AppendLogRequest{
			Level:   "warning",
			Source:  "portal",
			Message: "slow dashboard load",
			Detail:  json.RawMessage(`{"elapsed_ms": 4200}`),
		})
		require.NoError(t, err)
		assert.Equal(t, "warning", resp.Level)
		assert.JSONEq(t, `{"elapsed_ms": 4200}`, string(resp.Detail))
	})

	t.Run("unknown level rejected", func(t *testing.T) {
		repo := new(MockAppLogRepository)
		svc := NewService(repo, nil)

		_, err := svc.Append(ctx, AppendLogRequest{Level: "fatal", Source: "portal", Message: "boom"})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestService_Purge(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAppLogRepository)
	svc := NewService(repo, nil)
	repo.On("DeleteAll", ctx).Return(int64(42), nil)

	deleted, err := svc.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), deleted)
}
