package services

import (
	"context"

	"github.com/sourcegraph/conc"

	"github.com/custodia-io/reward-ledger/internal/config"
	"github.com/custodia-io/reward-ledger/internal/custodian"
	"github.com/custodia-io/reward-ledger/internal/db"
	"github.com/custodia-io/reward-ledger/internal/ledger"
	"github.com/custodia-io/reward-ledger/internal/queue"
	"github.com/custodia-io/reward-ledger/internal/utils/poller"
)

// Service ties the in-memory ledger to its persistence, queue and custody
// dependencies. The ledger is the source of truth; mongo holds a projection
// of it that is refreshed after every operation and by the snapshot poller.
type Service struct {
	cfg          *config.Config
	db           db.DbInterface
	ledger       *ledger.Ledger
	custodian    custodian.TokenCustodian
	queueManager *queue.QueueManager
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	ledger *ledger.Ledger,
	tokenCustodian custodian.TokenCustodian,
	qm *queue.QueueManager,
) *Service {
	return &Service{
		cfg:          cfg,
		db:           db,
		ledger:       ledger,
		custodian:    tokenCustodian,
		queueManager: qm,
	}
}

// RunBackgroundLoops blocks until ctx is cancelled, driving the settle and
// snapshot pollers.
func (s *Service) RunBackgroundLoops(ctx context.Context) {
	settlePoller := poller.NewPoller(
		"settle",
		s.cfg.Ledger.SettleInterval,
		s.ledger.SettleRate,
	)
	snapshotPoller := poller.NewPoller(
		"snapshot",
		s.cfg.Ledger.SnapshotInterval,
		s.snapshot,
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		settlePoller.Start(ctx)
	})
	wg.Go(func() {
		snapshotPoller.Start(ctx)
	})
	wg.Wait()
}
