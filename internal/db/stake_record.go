package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/custodia-io/reward-ledger/internal/db/model"
)

// SaveStakeRecord upserts the full staker position. Positions are replaced
// wholesale after every settlement, so there is no partial update path.
func (db *Database) SaveStakeRecord(ctx context.Context, doc *model.StakeRecordDocument) error {
	collection := db.collection(model.StakeRecordCollection)

	filter := bson.M{"_id": doc.Staker}
	update := bson.M{"$set": doc}

	_, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) GetStakeRecord(ctx context.Context, staker string) (*model.StakeRecordDocument, error) {
	collection := db.collection(model.StakeRecordCollection)

	filter := bson.M{"_id": staker}

	var doc model.StakeRecordDocument
	err := collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{
				Key:     staker,
				Message: "stake record not found",
			}
		}
		return nil, err
	}

	return &doc, nil
}

func (db *Database) GetStakeRecords(ctx context.Context) ([]model.StakeRecordDocument, error) {
	collection := db.collection(model.StakeRecordCollection)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.StakeRecordDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func (db *Database) DeleteStakeRecord(ctx context.Context, staker string) error {
	collection := db.collection(model.StakeRecordCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": staker})
	if err != nil {
		return fmt.Errorf("failed to delete stake record for %s: %w", staker, err)
	}

	if result.DeletedCount == 0 {
		return &NotFoundError{
			Key:     staker,
			Message: "stake record not found",
		}
	}

	return nil
}
