package shared

import "context"

// ChangeAction describes the kind of row-level change that occurred.
type ChangeAction string

const (
	ChangeInsert ChangeAction = "INSERT"
	ChangeUpdate ChangeAction = "UPDATE"
	ChangeDelete ChangeAction = "DELETE"
)

// ChangeEvent is a row-level change notification. Clients subscribe per
// table and re-fetch on delivery; there is no ordering guarantee beyond
// eventual consistency with store state.
type ChangeEvent struct {
	Table  string       `json:"table"`
	Action ChangeAction `json:"action"`
	RowID  string       `json:"row_id"`
}

// ChangePublisher publishes row-change events after a write commits.
// Publishing is best-effort: implementations log failures and never
// propagate them to the caller.
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent)
}

// NopChangePublisher discards all events. Used in tests and when the
// notification channel is disabled.
type NopChangePublisher struct{}

// Publish implements ChangePublisher
func (NopChangePublisher) Publish(context.Context, ChangeEvent) {}
