package ledger

import (
	"sync/atomic"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/custodia-io/reward-ledger/internal/access"
	"github.com/custodia-io/reward-ledger/internal/custodian"
	"github.com/custodia-io/reward-ledger/internal/events"
	"github.com/custodia-io/reward-ledger/internal/types"
)

const (
	// bpsDenominator converts basis points to a fraction (10000 bps = 100%).
	bpsDenominator = 10_000
	// secondsPerYear is fixed at 365 days, no leap-year adjustment.
	secondsPerYear = 365 * 24 * 60 * 60
	// MaxAnnualRateBps caps the annual reward rate at 100%.
	MaxAnnualRateBps = 10_000
	// DefaultCoolingPeriod is the delay between requesting and finalizing
	// a withdrawal.
	DefaultCoolingPeriod = 10 * 24 * time.Hour
)

// wad is the fixed-point scale of the rate accumulator (10^18 = 1.0).
var wad = sdkmath.NewInt(1_000_000_000_000_000_000)

// Wad returns the fixed-point scale of the rate accumulator.
func Wad() sdkmath.Int {
	return wad
}

// Clock samples "now". Each ledger operation samples it exactly once and
// uses that instant throughout.
type Clock func() time.Time

// GlobalState is the singleton bookkeeping shared by all stakers.
type GlobalState struct {
	// RatePerStake is the cumulative reward-per-unit-staked multiplier,
	// scaled by 10^18. Non-decreasing, starts at 10^18.
	RatePerStake sdkmath.Int
	// LastUpdateTime is the unix time of the last multiplier advance.
	LastUpdateTime int64
	// TotalStaked equals the sum of every stake record's principal.
	TotalStaked sdkmath.Int
	// AnnualRateBps is the current annual reward rate in basis points.
	AnnualRateBps uint32
	// MinStake is the minimum principal accepted per stake call.
	MinStake sdkmath.Int
	// NextWithdrawID is the next withdrawal request identifier. Starts at
	// 1; 0 is reserved as "absent".
	NextWithdrawID uint64
}

// StakeRecord is the per-staker ledger entry. Created on first stake, never
// deleted.
type StakeRecord struct {
	// Principal is the currently staked amount.
	Principal sdkmath.Int
	// ClaimedValue is principal * rate / 10^18 as of the last settlement;
	// the subtraction baseline for future accrual.
	ClaimedValue sdkmath.Int
	// Debt is reward recognized as earned but unpaid because custody
	// lacked excess funds at settlement time. Non-negative.
	Debt sdkmath.Int
}

func newStakeRecord() *StakeRecord {
	return &StakeRecord{
		Principal:    sdkmath.ZeroInt(),
		ClaimedValue: sdkmath.ZeroInt(),
		Debt:         sdkmath.ZeroInt(),
	}
}

// WithdrawRequest is principal locked for the cooling period. Deleted
// exactly once on finalize; its id is never reused.
type WithdrawRequest struct {
	Owner       string
	RequestTime int64
	Amount      sdkmath.Int
}

// Ledger owns the global state and both record maps. All mutation goes
// through its methods; operations are totally ordered and atomic.
type Ledger struct {
	// busy is the scoped non-reentrancy flag held for the duration of
	// every public entry point.
	busy atomic.Bool

	clock         Clock
	custodian     custodian.TokenCustodian
	gate          access.Gate
	emitter       events.Emitter
	coolingPeriod time.Duration

	state       GlobalState
	stakes      map[string]*StakeRecord
	withdrawals map[uint64]*WithdrawRequest
}

type Option func(*Ledger)

func WithClock(clock Clock) Option {
	return func(l *Ledger) {
		l.clock = clock
	}
}

func WithCoolingPeriod(period time.Duration) Option {
	return func(l *Ledger) {
		l.coolingPeriod = period
	}
}

func WithEmitter(emitter events.Emitter) Option {
	return func(l *Ledger) {
		l.emitter = emitter
	}
}

// WithRestoredState hydrates the ledger from a persisted snapshot. The
// snapshot wins over the constructor's rate and parameter arguments.
func WithRestoredState(
	state GlobalState,
	stakes map[string]StakeRecord,
	withdrawals map[uint64]WithdrawRequest,
) Option {
	return func(l *Ledger) {
		l.state = state
		l.stakes = make(map[string]*StakeRecord, len(stakes))
		for staker, record := range stakes {
			r := record
			l.stakes[staker] = &r
		}
		l.withdrawals = make(map[uint64]*WithdrawRequest, len(withdrawals))
		for id, request := range withdrawals {
			w := request
			l.withdrawals[id] = &w
		}
	}
}

func New(
	tokenCustodian custodian.TokenCustodian,
	gate access.Gate,
	annualRateBps uint32,
	minStake sdkmath.Int,
	opts ...Option,
) *Ledger {
	l := &Ledger{
		clock:         time.Now,
		custodian:     tokenCustodian,
		gate:          gate,
		emitter:       events.Nop{},
		coolingPeriod: DefaultCoolingPeriod,
		state: GlobalState{
			RatePerStake:   wad,
			TotalStaked:    sdkmath.ZeroInt(),
			AnnualRateBps:  annualRateBps,
			MinStake:       minStake,
			NextWithdrawID: 1,
		},
		stakes:      make(map[string]*StakeRecord),
		withdrawals: make(map[uint64]*WithdrawRequest),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.state.LastUpdateTime == 0 {
		l.state.LastUpdateTime = l.clock().Unix()
	}
	return l
}

// acquire takes the operation-in-progress flag, rejecting re-entrant calls
// (e.g. a custodian implementation calling back into the ledger during a
// transfer). The returned release must run on every exit path.
func (l *Ledger) acquire() (func(), *types.Error) {
	if !l.busy.CompareAndSwap(false, true) {
		return nil, errReentrantCall()
	}
	return func() { l.busy.Store(false) }, nil
}

// GlobalStateView returns a copy of the global state. Like every view it
// takes the operation flag, so a custodian callback mid-transfer is
// rejected rather than shown intermediate state.
func (l *Ledger) GlobalStateView() (GlobalState, *types.Error) {
	release, err := l.acquire()
	if err != nil {
		return GlobalState{}, err
	}
	defer release()
	return l.state, nil
}
