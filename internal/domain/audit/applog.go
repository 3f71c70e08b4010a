package audit

import (
	"encoding/json"
	"strings"

	"github.com/predio/backend/internal/domain/shared"
)

// Level is the severity of a diagnostic record
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// ParseLevel maps a raw string to a Level
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelInfo:
		return LevelInfo, nil
	case LevelWarning:
		return LevelWarning, nil
	case LevelError:
		return LevelError, nil
	}
	return "", shared.NewDomainError("VALIDATION_ERROR", "Unknown log level")
}

// AppLog is an append-only diagnostic record written by client and
// orchestrator instrumentation. Admins can bulk-delete old records.
type AppLog struct {
	shared.BaseEntity
	Level   Level
	Source  string
	Message string
	Detail  json.RawMessage
}

// NewAppLog creates a diagnostic record
func NewAppLog(level Level, source, message string, detail json.RawMessage) (*AppLog, error) {
	if _, err := ParseLevel(string(level)); err != nil {
		return nil, err
	}
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Source cannot be empty")
	}
	if message == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Message cannot be empty")
	}
	return &AppLog{
		BaseEntity: shared.NewBaseEntity(),
		Level:      level,
		Source:     source,
		Message:    message,
		Detail:     detail,
	}, nil
}
