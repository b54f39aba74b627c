package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// EventDocument is an append-only audit record of a ledger event. TraceID
// links the event back to the request that produced it.
type EventDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Type    string             `bson:"type"`
	At      int64              `bson:"at"`
	TraceID string             `bson:"trace_id,omitempty"`
	Payload interface{}        `bson:"payload"`
}
