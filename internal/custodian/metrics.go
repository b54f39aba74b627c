package custodian

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/custodia-io/reward-ledger/internal/observability/metrics"
)

// CustodianWithMetrics records the duration and outcome of every custody
// transfer. Balance reads pass through unmeasured.
type CustodianWithMetrics struct {
	c TokenCustodian
}

func NewCustodianWithMetrics(c TokenCustodian) *CustodianWithMetrics {
	return &CustodianWithMetrics{c: c}
}

var _ TokenCustodian = (*CustodianWithMetrics)(nil)

func (m *CustodianWithMetrics) Pull(ctx context.Context, from string, amount sdkmath.Int) error {
	startTime := time.Now()
	err := m.c.Pull(ctx, from, amount)
	metrics.RecordCustodianTransfer(time.Since(startTime), "pull", err != nil)
	return err
}

func (m *CustodianWithMetrics) Push(ctx context.Context, to string, amount sdkmath.Int) error {
	startTime := time.Now()
	err := m.c.Push(ctx, to, amount)
	metrics.RecordCustodianTransfer(time.Since(startTime), "push", err != nil)
	return err
}

func (m *CustodianWithMetrics) Balance(ctx context.Context) (sdkmath.Int, error) {
	return m.c.Balance(ctx)
}
