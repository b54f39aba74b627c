package db

import (
	"context"
	"time"

	"github.com/custodia-io/reward-ledger/internal/db/model"
	"github.com/custodia-io/reward-ledger/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveStakeRecord(ctx context.Context, doc *model.StakeRecordDocument) error {
	return d.run("SaveStakeRecord", func() error {
		return d.db.SaveStakeRecord(ctx, doc)
	})
}

func (d *DbWithMetrics) GetStakeRecord(ctx context.Context, staker string) (result *model.StakeRecordDocument, err error) {
	//nolint:errcheck
	d.run("GetStakeRecord", func() error {
		result, err = d.db.GetStakeRecord(ctx, staker)
		return err
	})
	return
}

func (d *DbWithMetrics) GetStakeRecords(ctx context.Context) (result []model.StakeRecordDocument, err error) {
	//nolint:errcheck
	d.run("GetStakeRecords", func() error {
		result, err = d.db.GetStakeRecords(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) DeleteStakeRecord(ctx context.Context, staker string) error {
	return d.run("DeleteStakeRecord", func() error {
		return d.db.DeleteStakeRecord(ctx, staker)
	})
}

func (d *DbWithMetrics) SaveWithdrawRequest(ctx context.Context, doc *model.WithdrawRequestDocument) error {
	return d.run("SaveWithdrawRequest", func() error {
		return d.db.SaveWithdrawRequest(ctx, doc)
	})
}

func (d *DbWithMetrics) GetWithdrawRequest(ctx context.Context, id uint64) (result *model.WithdrawRequestDocument, err error) {
	//nolint:errcheck
	d.run("GetWithdrawRequest", func() error {
		result, err = d.db.GetWithdrawRequest(ctx, id)
		return err
	})
	return
}

func (d *DbWithMetrics) GetWithdrawRequestsByOwner(ctx context.Context, owner string) (result []model.WithdrawRequestDocument, err error) {
	//nolint:errcheck
	d.run("GetWithdrawRequestsByOwner", func() error {
		result, err = d.db.GetWithdrawRequestsByOwner(ctx, owner)
		return err
	})
	return
}

func (d *DbWithMetrics) GetWithdrawRequests(ctx context.Context) (result []model.WithdrawRequestDocument, err error) {
	//nolint:errcheck
	d.run("GetWithdrawRequests", func() error {
		result, err = d.db.GetWithdrawRequests(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) DeleteWithdrawRequest(ctx context.Context, id uint64) error {
	return d.run("DeleteWithdrawRequest", func() error {
		return d.db.DeleteWithdrawRequest(ctx, id)
	})
}

func (d *DbWithMetrics) SaveLedgerState(ctx context.Context, doc *model.LedgerStateDocument) error {
	return d.run("SaveLedgerState", func() error {
		return d.db.SaveLedgerState(ctx, doc)
	})
}

func (d *DbWithMetrics) GetLedgerState(ctx context.Context) (result *model.LedgerStateDocument, err error) {
	//nolint:errcheck
	d.run("GetLedgerState", func() error {
		result, err = d.db.GetLedgerState(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveEvent(ctx context.Context, doc *model.EventDocument) error {
	return d.run("SaveEvent", func() error {
		return d.db.SaveEvent(ctx, doc)
	})
}

func (d *DbWithMetrics) GetEventsByType(ctx context.Context, eventType string, limit int64) (result []model.EventDocument, err error) {
	//nolint:errcheck
	d.run("GetEventsByType", func() error {
		result, err = d.db.GetEventsByType(ctx, eventType, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
