package audit

import (
	"context"

	"github.com/predio/backend/internal/domain/shared"
)

// AppLogRepository defines persistence operations for diagnostic records
type AppLogRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]AppLog, error)
	FindByLevel(ctx context.Context, level Level, filter shared.Filter) ([]AppLog, error)
	Save(ctx context.Context, log *AppLog) error
	DeleteAll(ctx context.Context) (int64, error)
}
