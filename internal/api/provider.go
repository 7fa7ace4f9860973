package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/provenews/provemarket/internal/infra/pgutils"
	"github.com/provenews/provemarket/internal/repos/articles"
	"github.com/provenews/provemarket/internal/repos/markets"
	"github.com/provenews/provemarket/internal/repos/users"
	"github.com/provenews/provemarket/internal/services/ledger"
	marketsvc "github.com/provenews/provemarket/internal/services/markets"
	"github.com/provenews/provemarket/internal/services/settlement"
)

// HandlerProvider exposes the market core over HTTP. Status codes live here;
// the services below it only speak typed errors.
type HandlerProvider struct {
	ledger     *ledger.Service
	settlement *settlement.Service
	markets    *marketsvc.Service
	users      users.Users
	articles   articles.Articles
}

func NewHandler(
	ledgerSvc *ledger.Service,
	settlementSvc *settlement.Service,
	marketsSvc *marketsvc.Service,
	usersRepo users.Users,
	articlesRepo articles.Articles,
) *HandlerProvider {
	return &HandlerProvider{
		ledger:     ledgerSvc,
		settlement: settlementSvc,
		markets:    marketsSvc,
		users:      usersRepo,
		articles:   articlesRepo,
	}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)

		http.Error(w, `{"error":"internal json encode failure"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps the core's typed errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound),
		errors.Is(err, markets.ErrMarketNotFound),
		errors.Is(err, articles.ErrArticleNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, users.ErrInsufficientFunds):
		writeError(w, http.StatusConflict, "insufficient balance")
	case errors.Is(err, markets.ErrMarketResolved):
		writeError(w, http.StatusConflict, "market already resolved")
	case errors.Is(err, markets.ErrArticleHasMarket):
		writeError(w, http.StatusConflict, "article already has a market")
	case errors.Is(err, users.ErrUserExists),
		errors.Is(err, articles.ErrArticleExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, ledger.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "stake amount must be positive")
	case errors.Is(err, pgutils.ErrTxConflict):
		writeError(w, http.StatusServiceUnavailable, "transaction conflict, retry")
	default:
		slog.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseIDFromPath(r *http.Request, name string) (uint64, error) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s", name)
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}

	return id, nil
}

// decodeBody reads a JSON body into dst with a size cap and strict fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		return fmt.Errorf("decode body: %w", err)
	}

	return nil
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}

	return v
}
