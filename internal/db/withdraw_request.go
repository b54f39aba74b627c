package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/custodia-io/reward-ledger/internal/db/model"
)

func (db *Database) SaveWithdrawRequest(ctx context.Context, doc *model.WithdrawRequestDocument) error {
	_, err := db.collection(model.WithdrawRequestCollection).InsertOne(ctx, doc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     fmt.Sprintf("%d", doc.ID),
						Message: "withdraw request already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetWithdrawRequest(ctx context.Context, id uint64) (*model.WithdrawRequestDocument, error) {
	collection := db.collection(model.WithdrawRequestCollection)

	filter := bson.M{"_id": id}

	var doc model.WithdrawRequestDocument
	err := collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", id),
				Message: "withdraw request not found",
			}
		}
		return nil, err
	}

	return &doc, nil
}

func (db *Database) GetWithdrawRequestsByOwner(ctx context.Context, owner string) ([]model.WithdrawRequestDocument, error) {
	collection := db.collection(model.WithdrawRequestCollection)

	filter := bson.M{"owner": owner}

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.WithdrawRequestDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func (db *Database) GetWithdrawRequests(ctx context.Context) ([]model.WithdrawRequestDocument, error) {
	collection := db.collection(model.WithdrawRequestCollection)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []model.WithdrawRequestDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func (db *Database) DeleteWithdrawRequest(ctx context.Context, id uint64) error {
	collection := db.collection(model.WithdrawRequestCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete withdraw request %d: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d", id),
			Message: "withdraw request not found",
		}
	}

	return nil
}
