// internal/domain/entity/webhook.go
package entity

// WebhookConfig is the single notification target, stored in the webhooks
// collection under _id 1. A missing document or empty URL means
// notifications are disabled.
type WebhookConfig struct {
	ID  int    `bson:"_id"`
	URL string `bson:"url"`
}
