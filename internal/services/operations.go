package services

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/custodia-io/reward-ledger/internal/db/model"
	"github.com/custodia-io/reward-ledger/internal/ledger"
	"github.com/custodia-io/reward-ledger/internal/observability/metrics"
	"github.com/custodia-io/reward-ledger/internal/types"
)

// Stake pulls principal from the staker into custody and credits their
// position, settling accrued rewards first.
func (s *Service) Stake(ctx context.Context, staker string, amount sdkmath.Int) *types.Error {
	err := s.timed("Stake", func() *types.Error {
		return s.ledger.Stake(ctx, staker, amount)
	})
	if err != nil {
		return err
	}

	s.persistState(ctx)
	s.persistStakeRecord(ctx, staker)
	return nil
}

// ClaimRewards settles and pays out whatever the pool can cover, carrying
// the rest as debt.
func (s *Service) ClaimRewards(ctx context.Context, staker string) *types.Error {
	err := s.timed("ClaimRewards", func() *types.Error {
		return s.ledger.ClaimRewards(ctx, staker)
	})
	if err != nil {
		return err
	}

	s.persistState(ctx)
	s.persistStakeRecord(ctx, staker)
	return nil
}

// Donate moves tokens from the donor into custody with no position
// bookkeeping, topping up the reward pool.
func (s *Service) Donate(ctx context.Context, donor string, amount sdkmath.Int) *types.Error {
	return s.timed("Donate", func() *types.Error {
		return s.ledger.DonateTokensToRewards(ctx, donor, amount)
	})
}

// RequestWithdraw unlocks part of the staker's principal into a cooling
// withdrawal request and returns the request id.
func (s *Service) RequestWithdraw(ctx context.Context, staker string, amount sdkmath.Int) (uint64, *types.Error) {
	var id uint64
	err := s.timed("RequestWithdraw", func() *types.Error {
		var lerr *types.Error
		id, lerr = s.ledger.RequestWithdraw(ctx, staker, amount)
		return lerr
	})
	if err != nil {
		return 0, err
	}

	s.persistState(ctx)
	s.persistStakeRecord(ctx, staker)
	if request, verr := s.ledger.WithdrawStates(id); verr == nil {
		doc := model.NewWithdrawRequestDocument(id, request.Owner, request.Amount.String(), request.RequestTime)
		if derr := s.db.SaveWithdrawRequest(ctx, doc); derr != nil {
			log.Ctx(ctx).Error().Err(derr).Uint64("id", id).Msg("Failed to persist withdraw request")
		}
	}
	return id, nil
}

// FinalizeWithdraw pays out a request whose cooling period has elapsed.
func (s *Service) FinalizeWithdraw(ctx context.Context, staker string, id uint64) *types.Error {
	err := s.timed("FinalizeWithdraw", func() *types.Error {
		return s.ledger.FinalizeWithdraw(ctx, staker, id)
	})
	if err != nil {
		return err
	}

	if derr := s.db.DeleteWithdrawRequest(ctx, id); derr != nil {
		log.Ctx(ctx).Error().Err(derr).Uint64("id", id).Msg("Failed to delete withdraw request projection")
	}
	return nil
}

// SetMinStake updates the minimum accepted stake. Manager only.
func (s *Service) SetMinStake(ctx context.Context, caller string, minStake sdkmath.Int) *types.Error {
	err := s.timed("SetMinStake", func() *types.Error {
		return s.ledger.SetMinStake(ctx, caller, minStake)
	})
	if err != nil {
		return err
	}

	s.persistState(ctx)
	return nil
}

// SetAnnualRateBps updates the annual reward rate after settling the
// accumulator at the old rate. Manager only.
func (s *Service) SetAnnualRateBps(ctx context.Context, caller string, rateBps uint32) *types.Error {
	err := s.timed("SetAnnualRateBps", func() *types.Error {
		return s.ledger.SetAnnualRateBps(ctx, caller, rateBps)
	})
	if err != nil {
		return err
	}

	s.persistState(ctx)
	return nil
}

// WithdrawExcess pays the admin up to amount out of the custody balance
// not backing principal. Returns what was actually paid.
func (s *Service) WithdrawExcess(ctx context.Context, caller string, amount sdkmath.Int) (sdkmath.Int, *types.Error) {
	var paid sdkmath.Int
	err := s.timed("WithdrawExcess", func() *types.Error {
		var lerr *types.Error
		paid, lerr = s.ledger.ReceiveExcessiveBalance(ctx, caller, amount)
		return lerr
	})
	if err != nil {
		return sdkmath.Int{}, err
	}
	return paid, nil
}

// ClaimableRewards projects what ClaimRewards would pay right now.
func (s *Service) ClaimableRewards(ctx context.Context, staker string) (sdkmath.Int, *types.Error) {
	return s.ledger.AvailableRewardsToClaim(ctx, staker)
}

// StakePosition returns the staker's current ledger entry.
func (s *Service) StakePosition(staker string) (ledger.StakeRecord, *types.Error) {
	return s.ledger.StakeStates(staker)
}

// GlobalState returns the current global bookkeeping.
func (s *Service) GlobalState() (ledger.GlobalState, *types.Error) {
	return s.ledger.GlobalStateView()
}

// WithdrawRequest returns the pending request with the given id.
func (s *Service) WithdrawRequest(id uint64) (ledger.WithdrawRequest, *types.Error) {
	return s.ledger.WithdrawStates(id)
}

// WithdrawRequestsByOwner lists the owner's requests still cooling.
func (s *Service) WithdrawRequestsByOwner(owner string) (map[uint64]ledger.WithdrawRequest, *types.Error) {
	pending, err := s.ledger.PendingWithdrawals()
	if err != nil {
		return nil, err
	}
	out := make(map[uint64]ledger.WithdrawRequest)
	for id, request := range pending {
		if request.Owner == owner {
			out[id] = request
		}
	}
	return out, nil
}

func (s *Service) timed(op string, f func() *types.Error) *types.Error {
	startTime := time.Now()
	err := f()
	metrics.RecordLedgerOpDuration(time.Since(startTime), op, err != nil)
	return err
}
