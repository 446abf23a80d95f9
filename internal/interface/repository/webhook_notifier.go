package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"launchtrack-service/internal/domain/repository"
	"launchtrack-service/pkg/logger"
)

// WebhookNotifier delivers plain text messages to the webhook URL stored in
// MongoDB. A missing or empty config silently disables delivery.
type WebhookNotifier struct {
	webhookRepo repository.WebhookRepository
	logger      logger.Logger
	client      *http.Client
	retryDelay  time.Duration
}

// NewWebhookNotifier creates a new webhook notifier
func NewWebhookNotifier(webhookRepo repository.WebhookRepository, logger logger.Logger) repository.Notifier {
	return &WebhookNotifier{
		webhookRepo: webhookRepo,
		logger:      logger,
		client:      &http.Client{Timeout: 30 * time.Second},
		retryDelay:  5 * time.Second,
	}
}

// Notify posts the message to the configured webhook, retrying once
func (n *WebhookNotifier) Notify(ctx context.Context, message string) error {
	config, err := n.webhookRepo.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load webhook config: %w", err)
	}
	if config == nil || config.URL == "" {
		n.logger.Debug("No webhook configured, skipping notification")
		return nil
	}

	err = n.post(ctx, config.URL, message)
	if err == nil {
		return nil
	}

	n.logger.Warn("Webhook delivery failed, retrying", "url", config.URL, "error", err)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(n.retryDelay):
	}
	return n.post(ctx, config.URL, message)
}

func (n *WebhookNotifier) post(ctx context.Context, url, message string) error {
	jsonData, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	n.logger.Info("Webhook notified", "url", url, "message", message)
	return nil
}
