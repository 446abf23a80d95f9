package repository

import (
	"context"

	"launchtrack-service/internal/domain/entity"
	"launchtrack-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLaunchRepository implements LaunchRepository
type MongoLaunchRepository struct {
	collection *mongo.Collection
}

// NewMongoLaunchRepository creates a new launch repository
func NewMongoLaunchRepository(db *mongo.Database, collectionName string) repository.LaunchRepository {
	collection := db.Collection(collectionName)

	// Create indexes for dashboard queries
	ctx := context.Background()
	dateIndex := mongo.IndexModel{
		Keys: bson.M{"date_utc": 1},
	}
	collection.Indexes().CreateOne(ctx, dateIndex)

	rocketIndex := mongo.IndexModel{
		Keys: bson.M{"rocket_name": 1},
	}
	collection.Indexes().CreateOne(ctx, rocketIndex)

	return &MongoLaunchRepository{
		collection: collection,
	}
}

// UpsertMany replaces or inserts launches keyed by _id and returns the
// number of newly inserted documents.
func (r *MongoLaunchRepository) UpsertMany(ctx context.Context, launches []*entity.EnrichedLaunch) (int64, error) {
	if len(launches) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(launches))
	for _, launch := range launches {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": launch.ID}).
			SetReplacement(launch).
			SetUpsert(true))
	}

	result, err := r.collection.BulkWrite(ctx, models)
	if err != nil {
		return 0, err
	}
	return result.UpsertedCount, nil
}

// Find returns launches matching the filter, oldest first
func (r *MongoLaunchRepository) Find(ctx context.Context, filter repository.LaunchFilter) ([]*entity.EnrichedLaunch, error) {
	query := bson.M{}

	if filter.From != nil || filter.To != nil {
		dateRange := bson.M{}
		if filter.From != nil {
			dateRange["$gte"] = *filter.From
		}
		if filter.To != nil {
			dateRange["$lte"] = *filter.To
		}
		query["date_utc"] = dateRange
	}
	if len(filter.Rockets) > 0 {
		query["rocket_name"] = bson.M{"$in": filter.Rockets}
	}
	if len(filter.Sites) > 0 {
		query["launchpad_name"] = bson.M{"$in": filter.Sites}
	}
	if filter.SuccessUnknown {
		query["success"] = nil
	} else if filter.Success != nil {
		query["success"] = *filter.Success
	}

	opts := options.Find().SetSort(bson.M{"date_utc": 1})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	var launches []*entity.EnrichedLaunch
	if err := cursor.All(ctx, &launches); err != nil {
		return nil, err
	}
	return launches, nil
}
