package services

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/custodia-io/reward-ledger/internal/access"
	"github.com/custodia-io/reward-ledger/internal/config"
	"github.com/custodia-io/reward-ledger/internal/custodian"
	"github.com/custodia-io/reward-ledger/internal/db"
	"github.com/custodia-io/reward-ledger/internal/events"
	"github.com/custodia-io/reward-ledger/internal/ledger"
)

// LoadLedger builds the ledger either from the persisted mongo projection
// or, on first boot, from the configured parameters.
func LoadLedger(
	ctx context.Context,
	cfg *config.Config,
	database db.DbInterface,
	tokenCustodian custodian.TokenCustodian,
	gate access.Gate,
	emitter events.Emitter,
) (*ledger.Ledger, error) {
	if emitter == nil {
		emitter = events.Nop{}
	}
	opts := []ledger.Option{
		ledger.WithEmitter(emitter),
		ledger.WithCoolingPeriod(cfg.Ledger.CoolingPeriod),
	}

	stateDoc, err := database.GetLedgerState(ctx)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load ledger state: %w", err)
		}
		log.Info().Msg("No persisted ledger state found, starting fresh")
		return ledger.New(
			tokenCustodian,
			gate,
			cfg.Ledger.AnnualRateBps,
			cfg.Ledger.MinStakeAmount(),
			opts...,
		), nil
	}

	state, err := stateFromDocument(stateDoc)
	if err != nil {
		return nil, err
	}

	recordDocs, err := database.GetStakeRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stake records: %w", err)
	}
	stakes := make(map[string]ledger.StakeRecord, len(recordDocs))
	for _, doc := range recordDocs {
		record, err := stakeRecordFromDocument(&doc)
		if err != nil {
			return nil, err
		}
		stakes[doc.Staker] = record
	}

	requestDocs, err := database.GetWithdrawRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load withdraw requests: %w", err)
	}
	withdrawals := make(map[uint64]ledger.WithdrawRequest, len(requestDocs))
	for _, doc := range requestDocs {
		amount, err := intFromString(doc.Amount, "withdraw amount")
		if err != nil {
			return nil, err
		}
		withdrawals[doc.ID] = ledger.WithdrawRequest{
			Owner:       doc.Owner,
			RequestTime: doc.RequestTime,
			Amount:      amount,
		}
	}

	log.Info().
		Int("stake_records", len(stakes)).
		Int("pending_withdrawals", len(withdrawals)).
		Msg("Restored ledger from persisted state")

	opts = append(opts, ledger.WithRestoredState(state, stakes, withdrawals))
	return ledger.New(
		tokenCustodian,
		gate,
		state.AnnualRateBps,
		state.MinStake,
		opts...,
	), nil
}

func intFromString(value, field string) (sdkmath.Int, error) {
	parsed, ok := sdkmath.NewIntFromString(value)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("persisted %s %q is not a valid integer", field, value)
	}
	return parsed, nil
}
