package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Webhook delivers alert text to a Slack incoming webhook. Delivery is
// at-least-once from the caller's point of view: a failed run re-detects the
// same stations next time and alerts again.
type Webhook struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhook creates a webhook notifier. An empty URL is allowed; Notify then
// logs the message instead of delivering it, which keeps local runs safe.
func NewWebhook(url string, timeout time.Duration, logger *slog.Logger) *Webhook {
	return &Webhook{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type payload struct {
	Text string `json:"text"`
}

// Notify posts the message. Callers must not invoke this with an empty
// message; an empty alert is a formatter contract violation, not a delivery.
func (w *Webhook) Notify(ctx context.Context, message string) error {
	if w.url == "" {
		w.logger.Warn("slack webhook not configured, printing alert instead", "message", message)
		return nil
	}

	body, err := json.Marshal(payload{Text: message})
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack webhook error: status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
