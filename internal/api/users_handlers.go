package api

import (
	"net/http"
	"strings"
)

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUserHandler handles POST /users
func (h *HandlerProvider) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "username and email required")
		return
	}

	user, err := h.users.Create(r.Context(), req.Username, req.Email)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserView(user))
}

// GetUserHandler handles GET /users/{userId}
func (h *HandlerProvider) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDFromPath(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId in path")
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserView(user))
}

// GetBalanceHandler handles GET /users/{userId}/balance
func (h *HandlerProvider) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDFromPath(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId in path")
		return
	}

	bal, err := h.users.GetBalance(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"userId":  userID,
		"balance": bal,
	})
}

// GetUserStakesHandler handles GET /users/{userId}/stakes
func (h *HandlerProvider) GetUserStakesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDFromPath(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId in path")
		return
	}

	list, err := h.ledger.UserStakes(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStakeViews(list))
}

// LeaderboardHandler handles GET /leaderboard
func (h *HandlerProvider) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	top, err := h.users.Leaderboard(r.Context(), limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	views := make([]userView, 0, len(top))
	for _, u := range top {
		views = append(views, toUserView(u))
	}

	writeJSON(w, http.StatusOK, views)
}
