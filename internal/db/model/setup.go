package model

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/custodia-io/reward-ledger/internal/config"
)

const (
	StakeRecordCollection     = "stake_records"
	WithdrawRequestCollection = "withdraw_requests"
	LedgerStateCollection     = "ledger_state"
	EventCollection           = "ledger_events"
)

type index struct {
	Indexes map[string]int
	Unique  bool
}

var collections = map[string][]index{
	StakeRecordCollection: {},
	WithdrawRequestCollection: {
		{Indexes: map[string]int{"owner": 1}, Unique: false},
		{Indexes: map[string]int{"request_time": 1}, Unique: false},
	},
	LedgerStateCollection: {},
	EventCollection: {
		{Indexes: map[string]int{"type": 1, "at": 1}, Unique: false},
	},
}

// Setup creates the collections and indexes used by the ledger.
// It is idempotent and safe to run on every startup.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)

	for name, idxs := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		for _, idx := range idxs {
			if err := createIndex(ctx, database, name, idx); err != nil {
				return err
			}
		}
	}

	return client.Disconnect(ctx)
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	err := database.CreateCollection(ctx, collectionName)
	if err != nil {
		// collection already exists
		if _, ok := err.(mongo.CommandError); ok {
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
	}
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	if len(idx.Indexes) == 0 {
		return nil
	}

	keys := bson.D{}
	for field, order := range idx.Indexes {
		keys = append(keys, bson.E{Key: field, Value: order})
	}

	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index on collection %s: %w", collectionName, err)
	}

	return nil
}
