package api

import (
	"net/http"

	"github.com/provenews/provemarket/internal/repos/markets"
)

// GetMarketHandler handles GET /markets/{marketId}
func (h *HandlerProvider) GetMarketHandler(w http.ResponseWriter, r *http.Request) {
	marketID, err := parseIDFromPath(r, "marketId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid marketId in path")
		return
	}

	market, err := h.markets.Get(r.Context(), marketID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMarketView(market))
}

// ListMarketsHandler handles GET /markets
func (h *HandlerProvider) ListMarketsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.markets.List(r.Context(), markets.ListOptions{
		IncludeResolved: r.URL.Query().Get("includeResolved") == "true",
		Category:        r.URL.Query().Get("category"),
		Limit:           queryInt(r, "limit", 50),
		Offset:          queryInt(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	views := make([]marketView, 0, len(list))
	for _, m := range list {
		views = append(views, toMarketView(m))
	}

	writeJSON(w, http.StatusOK, views)
}

// DeleteMarketHandler handles DELETE /markets/{marketId}
func (h *HandlerProvider) DeleteMarketHandler(w http.ResponseWriter, r *http.Request) {
	marketID, err := parseIDFromPath(r, "marketId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid marketId in path")
		return
	}

	err = h.markets.Delete(r.Context(), marketID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMarketStatsHandler handles GET /markets/{marketId}/stats
func (h *HandlerProvider) GetMarketStatsHandler(w http.ResponseWriter, r *http.Request) {
	marketID, err := parseIDFromPath(r, "marketId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid marketId in path")
		return
	}

	stats, err := h.markets.Stats(r.Context(), marketID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsView(stats))
}
