package services

import (
	"context"
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/custodia-io/reward-ledger/internal/db"
	"github.com/custodia-io/reward-ledger/internal/db/model"
	"github.com/custodia-io/reward-ledger/internal/ledger"
	"github.com/custodia-io/reward-ledger/internal/observability/metrics"
	"github.com/custodia-io/reward-ledger/internal/types"
)

// intAsFloat renders an arbitrary-precision amount for gauges. Precision
// loss is fine there.
func intAsFloat(value sdkmath.Int) float64 {
	f, _ := new(big.Float).SetInt(value.BigInt()).Float64()
	return f
}

func stateToDocument(state ledger.GlobalState) *model.LedgerStateDocument {
	return &model.LedgerStateDocument{
		RatePerStake:   state.RatePerStake.String(),
		LastUpdateTime: state.LastUpdateTime,
		TotalStaked:    state.TotalStaked.String(),
		AnnualRateBps:  state.AnnualRateBps,
		MinStake:       state.MinStake.String(),
		NextWithdrawID: state.NextWithdrawID,
	}
}

func stateFromDocument(doc *model.LedgerStateDocument) (ledger.GlobalState, error) {
	rate, err := intFromString(doc.RatePerStake, "rate per stake")
	if err != nil {
		return ledger.GlobalState{}, err
	}
	totalStaked, err := intFromString(doc.TotalStaked, "total staked")
	if err != nil {
		return ledger.GlobalState{}, err
	}
	minStake, err := intFromString(doc.MinStake, "min stake")
	if err != nil {
		return ledger.GlobalState{}, err
	}

	return ledger.GlobalState{
		RatePerStake:   rate,
		LastUpdateTime: doc.LastUpdateTime,
		TotalStaked:    totalStaked,
		AnnualRateBps:  doc.AnnualRateBps,
		MinStake:       minStake,
		NextWithdrawID: doc.NextWithdrawID,
	}, nil
}

func stakeRecordToDocument(staker string, record ledger.StakeRecord) *model.StakeRecordDocument {
	return model.NewStakeRecordDocument(
		staker,
		record.Principal.String(),
		record.ClaimedValue.String(),
		record.Debt.String(),
	)
}

func stakeRecordFromDocument(doc *model.StakeRecordDocument) (ledger.StakeRecord, error) {
	principal, err := intFromString(doc.Principal, "principal")
	if err != nil {
		return ledger.StakeRecord{}, err
	}
	claimedValue, err := intFromString(doc.ClaimedValue, "claimed value")
	if err != nil {
		return ledger.StakeRecord{}, err
	}
	debt, err := intFromString(doc.Debt, "debt")
	if err != nil {
		return ledger.StakeRecord{}, err
	}

	return ledger.StakeRecord{
		Principal:    principal,
		ClaimedValue: claimedValue,
		Debt:         debt,
	}, nil
}

// persistState refreshes the singleton state projection. Projection
// failures are logged, not propagated: the in-memory ledger already
// committed and the snapshot poller reconciles mongo on its next run.
func (s *Service) persistState(ctx context.Context) {
	state, verr := s.ledger.GlobalStateView()
	if verr != nil {
		log.Ctx(ctx).Error().Err(verr).Msg("Failed to read ledger state for projection")
		return
	}
	if err := s.db.SaveLedgerState(ctx, stateToDocument(state)); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to persist ledger state")
	}
}

func (s *Service) persistStakeRecord(ctx context.Context, staker string) {
	record, verr := s.ledger.StakeStates(staker)
	if verr != nil {
		log.Ctx(ctx).Error().Err(verr).Str("staker", staker).Msg("Failed to read stake record for projection")
		return
	}
	doc := stakeRecordToDocument(staker, record)
	if err := s.db.SaveStakeRecord(ctx, doc); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("staker", staker).Msg("Failed to persist stake record")
	}
}

// snapshot rewrites the full mongo projection and refreshes the exported
// gauges. Runs on the snapshot poller.
func (s *Service) snapshot(ctx context.Context) *types.Error {
	state, verr := s.ledger.GlobalStateView()
	if verr != nil {
		return verr
	}
	if err := s.db.SaveLedgerState(ctx, stateToDocument(state)); err != nil {
		return types.NewInternalServiceError(err)
	}

	records, verr := s.ledger.StakeRecords()
	if verr != nil {
		return verr
	}
	totalDebt := sdkmath.ZeroInt()
	for staker, record := range records {
		if err := s.db.SaveStakeRecord(ctx, stakeRecordToDocument(staker, record)); err != nil {
			return types.NewInternalServiceError(err)
		}
		totalDebt = totalDebt.Add(record.Debt)
	}

	pending, verr := s.ledger.PendingWithdrawals()
	if verr != nil {
		return verr
	}
	for id, request := range pending {
		doc := model.NewWithdrawRequestDocument(id, request.Owner, request.Amount.String(), request.RequestTime)
		if err := s.db.SaveWithdrawRequest(ctx, doc); err != nil && !db.IsDuplicateKeyError(err) {
			return types.NewInternalServiceError(err)
		}
	}

	if balance, err := s.custodian.Balance(ctx); err == nil {
		metrics.RecordAvailableRewards(intAsFloat(balance.Sub(state.TotalStaked)))
	}

	metrics.RecordTotalStaked(intAsFloat(state.TotalStaked))
	metrics.RecordRewardDebt(intAsFloat(totalDebt))
	metrics.RecordRateAccumulator(intAsFloat(state.RatePerStake))
	metrics.RecordPendingWithdrawals(len(pending))

	return nil
}
