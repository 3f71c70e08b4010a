// Package event provides the Redis-backed row-change notification channel.
package event

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/predio/backend/internal/domain/shared"
)

// channelPrefix namespaces the per-table pub/sub channels
const channelPrefix = "changes:"

// RedisChangePublisher publishes row-change events to Redis pub/sub.
// Clients subscribe to changes:<table> and re-fetch rows on delivery.
type RedisChangePublisher struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisChangePublisher creates a RedisChangePublisher
func NewRedisChangePublisher(client *redis.Client, logger *zap.Logger) *RedisChangePublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisChangePublisher{client: client, logger: logger}
}

// Publish sends the event to the table's channel. Delivery is best-effort:
// failures are logged and never surfaced to the writing request.
func (p *RedisChangePublisher) Publish(ctx context.Context, event shared.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to encode change event",
			zap.String("table", event.Table), zap.Error(err))
		return
	}
	if err := p.client.Publish(ctx, channelPrefix+event.Table, payload).Err(); err != nil {
		p.logger.Warn("Failed to publish change event",
			zap.String("table", event.Table),
			zap.String("action", string(event.Action)),
			zap.Error(err))
	}
}

// Channel returns the pub/sub channel name for a table
func Channel(table string) string {
	return channelPrefix + table
}

// Ensure RedisChangePublisher implements ChangePublisher
var _ shared.ChangePublisher = (*RedisChangePublisher)(nil)
