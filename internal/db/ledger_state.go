package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/custodia-io/reward-ledger/internal/db/model"
)

// SaveLedgerState upserts the singleton global state snapshot.
func (db *Database) SaveLedgerState(ctx context.Context, doc *model.LedgerStateDocument) error {
	collection := db.collection(model.LedgerStateCollection)

	doc.ID = model.LedgerStateID
	filter := bson.M{"_id": model.LedgerStateID}
	update := bson.M{"$set": doc}

	_, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) GetLedgerState(ctx context.Context) (*model.LedgerStateDocument, error) {
	collection := db.collection(model.LedgerStateCollection)

	filter := bson.M{"_id": model.LedgerStateID}

	var doc model.LedgerStateDocument
	err := collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{
				Key:     model.LedgerStateID,
				Message: "ledger state not found",
			}
		}
		return nil, err
	}

	return &doc, nil
}
