package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter constructs the router with all API endpoints registered.
func NewRouter(h *HandlerProvider) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/users", h.CreateUserHandler)
	r.Get("/users/{userId}", h.GetUserHandler)
	r.Get("/users/{userId}/balance", h.GetBalanceHandler)
	r.Get("/users/{userId}/stakes", h.GetUserStakesHandler)
	r.Get("/leaderboard", h.LeaderboardHandler)

	r.Post("/articles", h.CreateArticleHandler)
	r.Get("/articles", h.ListArticlesHandler)
	r.Get("/articles/unpromoted", h.ListUnpromotedArticlesHandler)
	r.Get("/articles/{articleId}", h.GetArticleHandler)
	r.Post("/articles/{articleId}/market", h.PromoteArticleHandler)

	r.Get("/markets", h.ListMarketsHandler)
	r.Get("/markets/{marketId}", h.GetMarketHandler)
	r.Delete("/markets/{marketId}", h.DeleteMarketHandler)
	r.Get("/markets/{marketId}/stats", h.GetMarketStatsHandler)

	r.Post("/markets/{marketId}/stakes", h.PlaceStakeHandler)
	r.Post("/markets/{marketId}/resolve", h.ResolveMarketHandler)
	r.Post("/markets/{marketId}/refund", h.RefundMarketHandler)

	return r
}
