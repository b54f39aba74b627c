package db

import (
	"context"

	"github.com/custodia-io/reward-ledger/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error
	SaveStakeRecord(ctx context.Context, doc *model.StakeRecordDocument) error
	GetStakeRecord(ctx context.Context, staker string) (*model.StakeRecordDocument, error)
	GetStakeRecords(ctx context.Context) ([]model.StakeRecordDocument, error)
	DeleteStakeRecord(ctx context.Context, staker string) error
	SaveWithdrawRequest(ctx context.Context, doc *model.WithdrawRequestDocument) error
	GetWithdrawRequest(ctx context.Context, id uint64) (*model.WithdrawRequestDocument, error)
	GetWithdrawRequestsByOwner(ctx context.Context, owner string) ([]model.WithdrawRequestDocument, error)
	GetWithdrawRequests(ctx context.Context) ([]model.WithdrawRequestDocument, error)
	DeleteWithdrawRequest(ctx context.Context, id uint64) error
	SaveLedgerState(ctx context.Context, doc *model.LedgerStateDocument) error
	GetLedgerState(ctx context.Context) (*model.LedgerStateDocument, error)
	SaveEvent(ctx context.Context, doc *model.EventDocument) error
	GetEventsByType(ctx context.Context, eventType string, limit int64) ([]model.EventDocument, error)
}
