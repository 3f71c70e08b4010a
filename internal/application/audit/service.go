// Package audit exposes the append-only application log used by client and
// orchestrator instrumentation.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/predio/backend/internal/domain/audit"
	"github.com/predio/backend/internal/domain/shared"
)

// AppendLogRequest is the input for a new diagnostic record
type AppendLogRequest struct {
	Level   string          `json:"level" binding:"required"`
	Source  string          `json:"source" binding:"required"`
	Message string          `json:"message" binding:"required"`
	Detail  json.RawMessage `json:"detail"`
}

// AppLogResponse is the API view of a diagnostic record
type AppLogResponse struct {
	ID        uuid.UUID       `json:"id"`
	Level     string          `json:"level"`
	Source    string          `json:"source"`
	Message   string          `json:"message"`
	Detail    json.RawMessage `json:"detail,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToAppLogResponse converts a domain AppLog
func ToAppLogResponse(log *audit.AppLog) AppLogResponse {
	return AppLogResponse{
		ID:        log.ID,
		Level:     string(log.Level),
		Source:    log.Source,
		Message:   log.Message,
		Detail:    log.Detail,
		CreatedAt: log.CreatedAt,
	}
}

// Service manages diagnostic records
type Service struct {
	appLogRepo audit.AppLogRepository
	logger     *zap.Logger
}

// NewService creates an audit Service
func NewService(appLogRepo audit.AppLogRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{appLogRepo: appLogRepo, logger: logger}
}

// Append records a diagnostic entry
func (s *Service) Append(ctx context.Context, req AppendLogRequest) (*AppLogResponse, error) {
	level, err := audit.ParseLevel(req.Level)
	if err != nil {
		return nil, err
	}

	log, err := audit.NewAppLog(level, req.Source, req.Message, req.Detail)
	if err != nil {
		return nil, err
	}
	if err := s.appLogRepo.Save(ctx, log); err != nil {
		s.logger.Error("Failed to save app log", zap.Error(err))
		return nil, shared.ErrStoreWrite
	}

	resp := ToAppLogResponse(log)
	return &resp, nil
}

// List returns diagnostic records, newest first by default
func (s *Service) List(ctx context.Context, filter shared.Filter) ([]AppLogResponse, error) {
	logs, err := s.appLogRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]AppLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToAppLogResponse(&logs[i])
	}
	return responses, nil
}

// Purge bulk-deletes all records and returns how many were removed
func (s *Service) Purge(ctx context.Context) (int64, error) {
	deleted, err := s.appLogRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Purged app logs", zap.Int64("deleted", deleted))
	return deleted, nil
}
