package repository

import (
	"context"

	"launchtrack-service/internal/domain/entity"
)

// WebhookRepository defines the interface for webhook configuration lookups
type WebhookRepository interface {
	GetConfig(ctx context.Context) (*entity.WebhookConfig, error)
}

// Notifier defines the interface for outbound notifications
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
