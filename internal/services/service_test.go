package services_test

import (
	"context"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-io/reward-ledger/internal/access"
	"github.com/custodia-io/reward-ledger/internal/config"
	"github.com/custodia-io/reward-ledger/internal/custodian"
	"github.com/custodia-io/reward-ledger/internal/db"
	"github.com/custodia-io/reward-ledger/internal/db/model"
	"github.com/custodia-io/reward-ledger/internal/ledger"
	"github.com/custodia-io/reward-ledger/internal/observability/metrics"
	"github.com/custodia-io/reward-ledger/internal/observability/tracing"
	"github.com/custodia-io/reward-ledger/internal/services"
	"github.com/custodia-io/reward-ledger/internal/types"
	"github.com/custodia-io/reward-ledger/tests/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Ledger: config.LedgerConfig{
			AnnualRateBps:    2000,
			MinStake:         "100",
			CoolingPeriod:    240 * time.Hour,
			SettleInterval:   30 * time.Second,
			SnapshotInterval: 5 * time.Minute,
		},
		Access: config.AccessConfig{
			Admins:   []string{"admin"},
			Managers: []string{"manager"},
		},
	}
}

func newTestService(t *testing.T, mockDB *mocks.DbInterface, opts ...ledger.Option) (*services.Service, *custodian.MemoryCustodian) {
	t.Helper()

	metrics.Init(9999)

	cfg := testConfig()
	memCustodian := custodian.NewMemoryCustodian()
	gate := access.NewStaticGate(cfg.Access.Admins, cfg.Access.Managers)

	opts = append(opts, ledger.WithEmitter(services.NewEventSink(mockDB, nil)))
	l := ledger.New(memCustodian, gate, cfg.Ledger.AnnualRateBps, cfg.Ledger.MinStakeAmount(), opts...)

	return services.NewService(cfg, mockDB, l, memCustodian, nil), memCustodian
}

func TestStakePersistsProjection(t *testing.T) {
	ctx := context.Background()
	mockDB := mocks.NewDbInterface(t)

	svc, memCustodian := newTestService(t, mockDB)
	memCustodian.Mint("alice", sdkmath.NewInt(1_000))

	mockDB.On("SaveEvent", mock.Anything, mock.Anything).Return(nil)
	mockDB.On("SaveLedgerState", mock.Anything, mock.MatchedBy(func(doc *model.LedgerStateDocument) bool {
		return doc.TotalStaked == "1000"
	})).Return(nil)
	mockDB.On("SaveStakeRecord", mock.Anything, mock.MatchedBy(func(doc *model.StakeRecordDocument) bool {
		return doc.Staker == "alice" && doc.Principal == "1000"
	})).Return(nil)

	err := svc.Stake(ctx, "alice", sdkmath.NewInt(1_000))
	require.Nil(t, err)

	position, verr := svc.StakePosition("alice")
	require.Nil(t, verr)
	require.Equal(t, "1000", position.Principal.String())
}

func TestStakeFailureSkipsProjection(t *testing.T) {
	ctx := context.Background()
	mockDB := mocks.NewDbInterface(t)

	svc, _ := newTestService(t, mockDB)

	// below min stake, no db call expected
	err := svc.Stake(ctx, "alice", sdkmath.NewInt(1))
	require.NotNil(t, err)
}

func TestRequestWithdrawPersistsRequest(t *testing.T) {
	ctx := context.Background()
	mockDB := mocks.NewDbInterface(t)

	svc, memCustodian := newTestService(t, mockDB)
	memCustodian.Mint("alice", sdkmath.NewInt(1_000))

	mockDB.On("SaveEvent", mock.Anything, mock.Anything).Return(nil)
	mockDB.On("SaveLedgerState", mock.Anything, mock.Anything).Return(nil)
	mockDB.On("SaveStakeRecord", mock.Anything, mock.Anything).Return(nil)

	err := svc.Stake(ctx, "alice", sdkmath.NewInt(1_000))
	require.Nil(t, err)

	mockDB.On("SaveWithdrawRequest", mock.Anything, mock.MatchedBy(func(doc *model.WithdrawRequestDocument) bool {
		return doc.ID == 1 && doc.Owner == "alice" && doc.Amount == "400"
	})).Return(nil)

	id, err := svc.RequestWithdraw(ctx, "alice", sdkmath.NewInt(400))
	require.Nil(t, err)
	require.Equal(t, uint64(1), id)

	position, verr := svc.StakePosition("alice")
	require.Nil(t, verr)
	require.Equal(t, "600", position.Principal.String())
}

func TestFinalizeWithdrawDeletesRequest(t *testing.T) {
	ctx := context.Background()
	mockDB := mocks.NewDbInterface(t)

	now := time.Now().Unix()
	clockNow := now
	svc, memCustodian := newTestService(t, mockDB,
		ledger.WithClock(func() time.Time { return time.Unix(clockNow, 0) }),
	)
	memCustodian.Mint("alice", sdkmath.NewInt(1_000))

	mockDB.On("SaveEvent", mock.Anything, mock.Anything).Return(nil)
	mockDB.On("SaveLedgerState", mock.Anything, mock.Anything).Return(nil)
	mockDB.On("SaveStakeRecord", mock.Anything, mock.Anything).Return(nil)
	mockDB.On("SaveWithdrawRequest", mock.Anything, mock.Anything).Return(nil)

	require.Nil(t, svc.Stake(ctx, "alice", sdkmath.NewInt(1_000)))
	id, err := svc.RequestWithdraw(ctx, "alice", sdkmath.NewInt(400))
	require.Nil(t, err)

	clockNow = now + int64((240 * time.Hour).Seconds())

	mockDB.On("DeleteWithdrawRequest", mock.Anything, id).Return(nil)
	require.Nil(t, svc.FinalizeWithdraw(ctx, "alice", id))

	require.Equal(t, "400", memCustodian.AccountBalance("alice").String())
}

func TestEventSinkStampsTraceID(t *testing.T) {
	ctx := tracing.InjectTraceID(context.Background())
	mockDB := mocks.NewDbInterface(t)
	sink := services.NewEventSink(mockDB, nil)

	mockDB.On("SaveEvent", mock.Anything, mock.MatchedBy(func(doc *model.EventDocument) bool {
		return doc.Type == types.EventStakeRecorded.String() && doc.TraceID == tracing.TraceID(ctx)
	})).Return(nil)

	sink.Emit(ctx, types.NewEvent(types.EventStakeRecorded, 1_700_000_000, types.StakeRecordedPayload{
		Staker:    "alice",
		Amount:    sdkmath.NewInt(100),
		Principal: sdkmath.NewInt(100),
	}))
}

func TestLoadLedgerFresh(t *testing.T) {
	ctx := context.Background()
	mockDB := mocks.NewDbInterface(t)

	mockDB.On("GetLedgerState", mock.Anything).Return(nil, &db.NotFoundError{Message: "ledger state not found"})

	cfg := testConfig()
	memCustodian := custodian.NewMemoryCustodian()
	gate := access.NewStaticGate(cfg.Access.Admins, cfg.Access.Managers)

	l, err := services.LoadLedger(ctx, cfg, mockDB, memCustodian, gate, nil)
	require.NoError(t, err)

	state, verr := l.GlobalStateView()
	require.Nil(t, verr)
	require.Equal(t, uint32(2000), state.AnnualRateBps)
	require.Equal(t, "100", state.MinStake.String())
	require.Equal(t, ledger.Wad(), state.RatePerStake)
	require.Equal(t, uint64(1), state.NextWithdrawID)
}

func TestLoadLedgerRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	mockDB := mocks.NewDbInterface(t)

	mockDB.On("GetLedgerState", mock.Anything).Return(&model.LedgerStateDocument{
		ID:             model.LedgerStateID,
		RatePerStake:   "1200000000000000000",
		LastUpdateTime: 1_700_000_000,
		TotalStaked:    "1500",
		AnnualRateBps:  2500,
		MinStake:       "100",
		NextWithdrawID: 7,
	}, nil)
	mockDB.On("GetStakeRecords", mock.Anything).Return([]model.StakeRecordDocument{
		{Staker: "alice", Principal: "1000", ClaimedValue: "1200", Debt: "50"},
		{Staker: "bob", Principal: "500", ClaimedValue: "600", Debt: "0"},
	}, nil)
	mockDB.On("GetWithdrawRequests", mock.Anything).Return([]model.WithdrawRequestDocument{
		{ID: 3, Owner: "alice", Amount: "250", RequestTime: 1_699_000_000},
	}, nil)

	cfg := testConfig()
	memCustodian := custodian.NewMemoryCustodian()
	gate := access.NewStaticGate(cfg.Access.Admins, cfg.Access.Managers)

	l, err := services.LoadLedger(ctx, cfg, mockDB, memCustodian, gate, nil)
	require.NoError(t, err)

	state, verr := l.GlobalStateView()
	require.Nil(t, verr)
	require.Equal(t, "1200000000000000000", state.RatePerStake.String())
	require.Equal(t, uint32(2500), state.AnnualRateBps)
	require.Equal(t, uint64(7), state.NextWithdrawID)
	require.Equal(t, "1500", state.TotalStaked.String())

	alice, verr := l.StakeStates("alice")
	require.Nil(t, verr)
	require.Equal(t, "1000", alice.Principal.String())
	require.Equal(t, "50", alice.Debt.String())

	request, lerr := l.WithdrawStates(3)
	require.Nil(t, lerr)
	require.Equal(t, "alice", request.Owner)
	require.Equal(t, "250", request.Amount.String())
}
