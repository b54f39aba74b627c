package api

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-io/reward-ledger/internal/types"
	"github.com/custodia-io/reward-ledger/pkg"
)

type stakeRequest struct {
	Staker string `json:"staker"`
	Amount string `json:"amount"`
}

type stakeResponse struct {
	Staker       string `json:"staker"`
	Principal    string `json:"principal"`
	ClaimedValue string `json:"claimedValue"`
	Debt         string `json:"debt"`
}

func (s *Server) handleStake(w http.ResponseWriter, r *http.Request) {
	var req stakeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := pkg.ValidateAddress(req.Staker); err != nil {
		writeError(w, types.NewValidationFailedError(fmt.Errorf("staker: %w", err)))
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.service.Stake(r.Context(), req.Staker, amount); err != nil {
		writeError(w, err)
		return
	}

	view, verr := s.stakeView(req.Staker)
	if verr != nil {
		writeError(w, verr)
		return
	}
	writeData(w, http.StatusOK, view)
}

func (s *Server) stakeView(staker string) (stakeResponse, *types.Error) {
	record, err := s.service.StakePosition(staker)
	if err != nil {
		return stakeResponse{}, err
	}
	return stakeResponse{
		Staker:       staker,
		Principal:    record.Principal.String(),
		ClaimedValue: record.ClaimedValue.String(),
		Debt:         record.Debt.String(),
	}, nil
}

type claimRequest struct {
	Staker string `json:"staker"`
}

func (s *Server) handleClaimRewards(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := pkg.ValidateAddress(req.Staker); err != nil {
		writeError(w, types.NewValidationFailedError(fmt.Errorf("staker: %w", err)))
		return
	}

	if err := s.service.ClaimRewards(r.Context(), req.Staker); err != nil {
		writeError(w, err)
		return
	}

	view, verr := s.stakeView(req.Staker)
	if verr != nil {
		writeError(w, verr)
		return
	}
	writeData(w, http.StatusOK, view)
}

type claimableResponse struct {
	Address   string `json:"address"`
	Claimable string `json:"claimable"`
}

func (s *Server) handleGetClaimable(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	claimable, err := s.service.ClaimableRewards(r.Context(), address)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, claimableResponse{
		Address:   address,
		Claimable: claimable.String(),
	})
}

type donateRequest struct {
	Donor  string `json:"donor"`
	Amount string `json:"amount"`
}

func (s *Server) handleDonate(w http.ResponseWriter, r *http.Request) {
	var req donateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := pkg.ValidateAddress(req.Donor); err != nil {
		writeError(w, types.NewValidationFailedError(fmt.Errorf("donor: %w", err)))
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.service.Donate(r.Context(), req.Donor, amount); err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, struct{}{})
}

type withdrawRequest struct {
	Owner  string `json:"owner"`
	Amount string `json:"amount"`
}

type withdrawResponse struct {
	ID          uint64 `json:"id"`
	Owner       string `json:"owner"`
	Amount      string `json:"amount"`
	RequestTime int64  `json:"requestTime"`
}

func (s *Server) handleRequestWithdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := pkg.ValidateAddress(req.Owner); err != nil {
		writeError(w, types.NewValidationFailedError(fmt.Errorf("owner: %w", err)))
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := s.service.RequestWithdraw(r.Context(), req.Owner, amount)
	if err != nil {
		writeError(w, err)
		return
	}

	request, err := s.service.WithdrawRequest(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, withdrawResponse{
		ID:          id,
		Owner:       request.Owner,
		Amount:      request.Amount.String(),
		RequestTime: request.RequestTime,
	})
}

type finalizeRequest struct {
	Owner string `json:"owner"`
}

func (s *Server) handleFinalizeWithdraw(w http.ResponseWriter, r *http.Request) {
	id, err := withdrawalID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req finalizeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := pkg.ValidateAddress(req.Owner); err != nil {
		writeError(w, types.NewValidationFailedError(fmt.Errorf("owner: %w", err)))
		return
	}

	if err := s.service.FinalizeWithdraw(r.Context(), req.Owner, id); err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, struct{}{})
}

func (s *Server) handleGetWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := withdrawalID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	request, err := s.service.WithdrawRequest(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, withdrawResponse{
		ID:          id,
		Owner:       request.Owner,
		Amount:      request.Amount.String(),
		RequestTime: request.RequestTime,
	})
}

func (s *Server) handleGetStake(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	view, verr := s.stakeView(address)
	if verr != nil {
		writeError(w, verr)
		return
	}
	writeData(w, http.StatusOK, view)
}

func (s *Server) handleGetOwnerWithdrawals(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	pending, verr := s.service.WithdrawRequestsByOwner(address)
	if verr != nil {
		writeError(w, verr)
		return
	}
	out := make([]withdrawResponse, 0, len(pending))
	for id, request := range pending {
		out = append(out, withdrawResponse{
			ID:          id,
			Owner:       request.Owner,
			Amount:      request.Amount.String(),
			RequestTime: request.RequestTime,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	writeData(w, http.StatusOK, out)
}

type stateResponse struct {
	RatePerStake   string `json:"ratePerStake"`
	LastUpdateTime int64  `json:"lastUpdateTime"`
	TotalStaked    string `json:"totalStaked"`
	AnnualRateBps  uint32 `json:"annualRateBps"`
	MinStake       string `json:"minStake"`
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, verr := s.service.GlobalState()
	if verr != nil {
		writeError(w, verr)
		return
	}
	writeData(w, http.StatusOK, stateResponse{
		RatePerStake:   state.RatePerStake.String(),
		LastUpdateTime: state.LastUpdateTime,
		TotalStaked:    state.TotalStaked.String(),
		AnnualRateBps:  state.AnnualRateBps,
		MinStake:       state.MinStake.String(),
	})
}

type minStakeRequest struct {
	Caller   string `json:"caller"`
	MinStake string `json:"minStake"`
}

func (s *Server) handleSetMinStake(w http.ResponseWriter, r *http.Request) {
	var req minStakeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	minStake, err := parseAmount(req.MinStake)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.service.SetMinStake(r.Context(), callerIdentity(r, req.Caller), minStake); err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, struct{}{})
}

type annualRateRequest struct {
	Caller        string `json:"caller"`
	AnnualRateBps uint32 `json:"annualRateBps"`
}

func (s *Server) handleSetAnnualRate(w http.ResponseWriter, r *http.Request) {
	var req annualRateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.service.SetAnnualRateBps(r.Context(), callerIdentity(r, req.Caller), req.AnnualRateBps); err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, struct{}{})
}

type excessRequest struct {
	Caller string `json:"caller"`
	Amount string `json:"amount"`
}

type excessResponse struct {
	Paid string `json:"paid"`
}

func (s *Server) handleWithdrawExcess(w http.ResponseWriter, r *http.Request) {
	var req excessRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	paid, err := s.service.WithdrawExcess(r.Context(), callerIdentity(r, req.Caller), amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, excessResponse{Paid: paid.String()})
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "ok")
}

// callerHeader carries the caller identity when a gateway strips request
// bodies. The body field wins when both are present.
const callerHeader = "X-Ledger-Caller"

func callerIdentity(r *http.Request, bodyCaller string) string {
	if bodyCaller != "" {
		return bodyCaller
	}
	return r.Header.Get(callerHeader)
}

func withdrawalID(r *http.Request) (uint64, *types.Error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.ValidationError,
			"withdrawal id must be a positive integer",
		)
	}
	return id, nil
}
