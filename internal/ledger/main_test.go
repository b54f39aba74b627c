package ledger_test

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/custodia-io/reward-ledger/internal/access"
	"github.com/custodia-io/reward-ledger/internal/custodian"
	"github.com/custodia-io/reward-ledger/internal/events"
	"github.com/custodia-io/reward-ledger/internal/ledger"
)

const (
	adminAddr   = "admin-1"
	managerAddr = "manager-1"

	day = 24 * 60 * 60
	// at 100% annual rate this principal accrues exactly 1 unit per second
	secondsPerYear = 365 * day
)

// fakeClock is a manually advanced clock shared by a test fixture.
type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() time.Time {
	return time.Unix(c.now, 0)
}

func (c *fakeClock) Advance(seconds int64) {
	c.now += seconds
}

type fixture struct {
	clock     *fakeClock
	custodian *custodian.MemoryCustodian
	recorder  *events.Recorder
	ledger    *ledger.Ledger
}

func newFixture(annualRateBps uint32, minStake int64, opts ...ledger.Option) *fixture {
	f := &fixture{
		clock:     &fakeClock{now: 1_700_000_000},
		custodian: custodian.NewMemoryCustodian(),
		recorder:  events.NewRecorder(),
	}

	gate := access.NewStaticGate([]string{adminAddr}, []string{managerAddr})
	opts = append([]ledger.Option{
		ledger.WithClock(f.clock.Now),
		ledger.WithEmitter(f.recorder),
	}, opts...)
	f.ledger = ledger.New(f.custodian, gate, annualRateBps, sdkmath.NewInt(minStake), opts...)
	return f
}

// fund credits an account so it can stake or donate.
func (f *fixture) fund(account string, amount int64) {
	f.custodian.Mint(account, sdkmath.NewInt(amount))
}

// fundRewards credits custody directly, enlarging the reward excess.
func (f *fixture) fundRewards(amount int64) {
	f.custodian.MintToVault(sdkmath.NewInt(amount))
}

// stakeStates reads a stake record between operations, failing the test if
// the view is rejected.
func (f *fixture) stakeStates(t *testing.T, user string) ledger.StakeRecord {
	t.Helper()
	record, err := f.ledger.StakeStates(user)
	require.Nil(t, err)
	return record
}

func (f *fixture) globalState(t *testing.T) ledger.GlobalState {
	t.Helper()
	state, err := f.ledger.GlobalStateView()
	require.Nil(t, err)
	return state
}

func (f *fixture) stakeRecords(t *testing.T) map[string]ledger.StakeRecord {
	t.Helper()
	records, err := f.ledger.StakeRecords()
	require.Nil(t, err)
	return records
}
