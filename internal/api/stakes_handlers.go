package api

import (
	"net/http"
)

type placeStakeRequest struct {
	UserID     uint64 `json:"userId"`
	Prediction *bool  `json:"prediction"`
	Amount     int64  `json:"amount"`
}

// PlaceStakeHandler handles POST /markets/{marketId}/stakes
func (h *HandlerProvider) PlaceStakeHandler(w http.ResponseWriter, r *http.Request) {
	marketID, err := parseIDFromPath(r, "marketId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid marketId in path")
		return
	}

	var req placeStakeRequest

	err = decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}
	if req.Prediction == nil {
		writeError(w, http.StatusBadRequest, "prediction required")
		return
	}

	stake, err := h.ledger.PlaceStake(r.Context(), req.UserID, marketID, *req.Prediction, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStakeView(stake))
}

type resolveMarketRequest struct {
	Outcome *bool `json:"outcome"`
}

// ResolveMarketHandler handles POST /markets/{marketId}/resolve
func (h *HandlerProvider) ResolveMarketHandler(w http.ResponseWriter, r *http.Request) {
	marketID, err := parseIDFromPath(r, "marketId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid marketId in path")
		return
	}

	var req resolveMarketRequest

	err = decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.Outcome == nil {
		writeError(w, http.StatusBadRequest, "outcome required")
		return
	}

	result, err := h.settlement.Resolve(r.Context(), marketID, *req.Outcome)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettlementView(result))
}

// RefundMarketHandler handles POST /markets/{marketId}/refund
func (h *HandlerProvider) RefundMarketHandler(w http.ResponseWriter, r *http.Request) {
	marketID, err := parseIDFromPath(r, "marketId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid marketId in path")
		return
	}

	result, err := h.settlement.RefundAll(r.Context(), marketID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettlementView(result))
}
