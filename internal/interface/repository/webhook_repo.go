package repository

import (
	"context"

	"launchtrack-service/internal/domain/entity"
	"launchtrack-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// webhookConfigID is the fixed _id of the single webhook config document.
const webhookConfigID = 1

// MongoWebhookRepository implements WebhookRepository
type MongoWebhookRepository struct {
	collection *mongo.Collection
}

// NewMongoWebhookRepository creates a new webhook config repository
func NewMongoWebhookRepository(db *mongo.Database, collectionName string) repository.WebhookRepository {
	return &MongoWebhookRepository{
		collection: db.Collection(collectionName),
	}
}

// GetConfig returns the webhook config document, or nil when none is set
func (r *MongoWebhookRepository) GetConfig(ctx context.Context) (*entity.WebhookConfig, error) {
	var config entity.WebhookConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": webhookConfigID}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}
