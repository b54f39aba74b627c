package api

import (
	"encoding/json"
	"errors"
	"net/http"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/custodia-io/reward-ledger/internal/types"
)

type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dataResponse{Data: data}); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err *types.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	body := errorResponse{
		ErrorCode: err.ErrorCode.String(),
		Message:   err.Error(),
	}
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		log.Error().Err(encodeErr).Msg("Failed to encode error response")
	}
}

func decodeBody(r *http.Request, into any) *types.Error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return types.NewValidationFailedError(errors.New("invalid request body"))
	}
	return nil
}

func parseAmount(value string) (sdkmath.Int, *types.Error) {
	amount, ok := sdkmath.NewIntFromString(value)
	if !ok {
		return sdkmath.Int{}, types.NewErrorWithMsg(
			http.StatusBadRequest,
			types.ValidationError,
			"amount must be a base-10 integer",
		)
	}
	return amount, nil
}
