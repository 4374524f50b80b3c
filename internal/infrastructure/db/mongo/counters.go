package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// nextSequence atomically increments and returns the counter named by key.
// Counters start at 1 and are created on first use.
func nextSequence(ctx context.Context, db *mongo.Database, key string) (int, error) {
	var doc struct {
		Seq int `bson:"seq"`
	}

	err := db.Collection(collectionCounters).FindOneAndUpdate(
		ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", key, err)
	}
	return doc.Seq, nil
}
