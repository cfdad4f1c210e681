package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes создает индексы, нужные запросам ядра. Индекс по room_key
// намеренно не уникален: дубликаты после гонки схлопываются при входе в комнату.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		helpRequestsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
			{Keys: bson.D{{Key: "assigned_officer_id", Value: 1}, {Key: "requester_id", Value: 1}}},
		},
		chatRoomsCollection: {
			{Keys: bson.D{{Key: "room_key", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		anonymousSOSCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("created_at_desc")},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}
	return nil
}
