// Package webhook delivers outbound JSON notifications to external automations.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/predio/backend/internal/infrastructure/config"
)

// Client posts JSON payloads to the configured automation endpoints.
// Delivery is best-effort: a failed or slow endpoint never fails the
// operation that triggered it.
type Client struct {
	httpClient *http.Client
	cfg        config.WebhookConfig
	logger     *zap.Logger
}

// NewClient creates a webhook Client
func NewClient(cfg config.WebhookConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

// TenantCreated notifies the automation endpoint about a new tenant
func (c *Client) TenantCreated(ctx context.Context, payload interface{}) {
	c.send(ctx, "tenant_created", c.cfg.TenantCreatedURL, payload)
}

// RepairRequested notifies the automation endpoint about a repair complaint
func (c *Client) RepairRequested(ctx context.Context, payload interface{}) {
	c.send(ctx, "repair_request", c.cfg.RepairRequestURL, payload)
}

func (c *Client) send(ctx context.Context, event, url string, payload interface{}) {
	if url == "" {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error("Failed to encode webhook payload",
			zap.String("event", event), zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to build webhook request",
			zap.String("event", event), zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Webhook delivery failed",
			zap.String("event", event), zap.String("url", url), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.logger.Warn("Webhook endpoint returned non-success status",
			zap.String("event", event),
			zap.String("url", url),
			zap.String("status", fmt.Sprintf("%d", resp.StatusCode)))
	}
}
