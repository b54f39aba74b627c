package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/custodia-io/reward-ledger/internal/db/model"
)

func (db *Database) SaveEvent(ctx context.Context, doc *model.EventDocument) error {
	_, err := db.collection(model.EventCollection).InsertOne(ctx, doc)
	return err
}

// GetEventsByType returns the most recent events of the given type,
// newest first, capped by limit.
func (db *Database) GetEventsByType(ctx context.Context, eventType string, limit int64) ([]model.EventDocument, error) {
	collection := db.collection(model.EventCollection)

	filter := bson.M{"type": eventType}
	opts := options.Find().SetSort(bson.M{"at": -1}).SetLimit(limit)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.EventDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}
