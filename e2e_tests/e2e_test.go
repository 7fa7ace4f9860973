package e2etests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
)

const (
	baseURL   = "http://localhost:8080"
	timeout   = 5 * time.Second
	waitReady = 20 * time.Second
)

var httpClient = &http.Client{Timeout: timeout}

func waitUntilReady(t *testing.T) {
	t.Helper()

	deadline := time.Now().Add(waitReady)
	for time.Now().Before(deadline) {
		resp, err := httpClient.Get(baseURL + "/healthz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(250 * time.Millisecond)
	}

	t.Fatalf("server not ready after %s", waitReady)
}

func doJSON(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp.StatusCode, raw
}

func createUser(t *testing.T) uint64 {
	t.Helper()

	// Unique per run so reruns against the same database pass.
	name := "e2e-" + uuid.NewString()

	code, body := doJSON(t, http.MethodPost, "/users", map[string]any{
		"username": name,
		"email":    name + "@example.com",
	})
	if code != http.StatusCreated {
		t.Fatalf("create user: want 201, got %d (%s)", code, body)
	}

	var u struct {
		ID      uint64 `json:"id"`
		Balance int64  `json:"balance"`
	}
	if err := json.Unmarshal(body, &u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if u.Balance != 100 {
		t.Fatalf("starting balance: want 100, got %d", u.Balance)
	}

	return u.ID
}

func createMarket(t *testing.T) uint64 {
	t.Helper()

	code, body := doJSON(t, http.MethodPost, "/articles", map[string]any{
		"sourceName":  "E2E Wire",
		"title":       "headline " + uuid.NewString(),
		"url":         "https://example.com/e2e/" + uuid.NewString(),
		"publishedAt": time.Now().UTC().Format(time.RFC3339),
	})
	if code != http.StatusCreated {
		t.Fatalf("create article: want 201, got %d (%s)", code, body)
	}

	var a struct {
		ID uint64 `json:"id"`
	}
	if err := json.Unmarshal(body, &a); err != nil {
		t.Fatalf("decode article: %v", err)
	}

	code, body = doJSON(t, http.MethodPost, fmt.Sprintf("/articles/%d/market", a.ID), nil)
	if code != http.StatusCreated {
		t.Fatalf("promote article: want 201, got %d (%s)", code, body)
	}

	var m struct {
		ID uint64 `json:"id"`
	}
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("decode market: %v", err)
	}

	return m.ID
}

func placeStake(t *testing.T, userID, marketID uint64, prediction bool, amount int64) (int, []byte) {
	t.Helper()

	return doJSON(t, http.MethodPost, fmt.Sprintf("/markets/%d/stakes", marketID), map[string]any{
		"userId":     userID,
		"prediction": prediction,
		"amount":     amount,
	})
}

func getBalance(t *testing.T, userID uint64) int64 {
	t.Helper()

	code, body := doJSON(t, http.MethodGet, fmt.Sprintf("/users/%d/balance", userID), nil)
	if code != http.StatusOK {
		t.Fatalf("get balance: want 200, got %d (%s)", code, body)
	}

	var resp struct {
		Balance int64 `json:"balance"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode balance: %v", err)
	}

	return resp.Balance
}

func TestE2E_StakeAndResolveFlow(t *testing.T) {
	waitUntilReady(t)

	alice := createUser(t)
	bob := createUser(t)
	marketID := createMarket(t)

	t.Run("stakes_debit_balances", func(t *testing.T) {
		code, body := placeStake(t, alice, marketID, true, 40)
		if code != http.StatusCreated {
			t.Fatalf("alice stake: want 201, got %d (%s)", code, body)
		}
		code, body = placeStake(t, bob, marketID, false, 60)
		if code != http.StatusCreated {
			t.Fatalf("bob stake: want 201, got %d (%s)", code, body)
		}

		if got := getBalance(t, alice); got != 60 {
			t.Fatalf("alice after stake: want 60, got %d", got)
		}
		if got := getBalance(t, bob); got != 40 {
			t.Fatalf("bob after stake: want 40, got %d", got)
		}
	})

	t.Run("overdraw_rejected_without_effect", func(t *testing.T) {
		code, body := placeStake(t, alice, marketID, true, 61)
		if code != http.StatusConflict {
			t.Fatalf("overdraw: want 409, got %d (%s)", code, body)
		}
		if got := getBalance(t, alice); got != 60 {
			t.Fatalf("alice after rejected stake: want 60, got %d", got)
		}
	})

	t.Run("stats_reflect_both_sides", func(t *testing.T) {
		code, body := doJSON(t, http.MethodGet, fmt.Sprintf("/markets/%d/stats", marketID), nil)
		if code != http.StatusOK {
			t.Fatalf("stats: want 200, got %d (%s)", code, body)
		}

		var stats struct {
			TotalParticipants int64 `json:"totalParticipants"`
			TotalStakeAmount  int64 `json:"totalStakeAmount"`
			TrueAmount        int64 `json:"trueAmount"`
			FalseAmount       int64 `json:"falseAmount"`
		}
		if err := json.Unmarshal(body, &stats); err != nil {
			t.Fatalf("decode stats: %v", err)
		}
		if stats.TotalParticipants != 2 || stats.TotalStakeAmount != 100 ||
			stats.TrueAmount != 40 || stats.FalseAmount != 60 {
			t.Fatalf("stats mismatch: %+v", stats)
		}
	})

	t.Run("resolve_pays_winner_whole_pool", func(t *testing.T) {
		code, body := doJSON(t, http.MethodPost, fmt.Sprintf("/markets/%d/resolve", marketID), map[string]any{
			"outcome": true,
		})
		if code != http.StatusOK {
			t.Fatalf("resolve: want 200, got %d (%s)", code, body)
		}

		var result struct {
			Pool     int64 `json:"pool"`
			Refunded bool  `json:"refunded"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("decode settlement: %v", err)
		}
		if result.Pool != 100 || result.Refunded {
			t.Fatalf("settlement mismatch: %+v", result)
		}

		if got := getBalance(t, alice); got != 160 {
			t.Fatalf("alice after resolve: want 160, got %d", got)
		}
		if got := getBalance(t, bob); got != 40 {
			t.Fatalf("bob after resolve: want 40, got %d", got)
		}
	})

	t.Run("second_resolve_conflicts", func(t *testing.T) {
		code, body := doJSON(t, http.MethodPost, fmt.Sprintf("/markets/%d/resolve", marketID), map[string]any{
			"outcome": true,
		})
		if code != http.StatusConflict {
			t.Fatalf("second resolve: want 409, got %d (%s)", code, body)
		}

		// Paid exactly once.
		if got := getBalance(t, alice); got != 160 {
			t.Fatalf("alice after second resolve: want 160, got %d", got)
		}
	})

	t.Run("stake_on_resolved_market_conflicts", func(t *testing.T) {
		code, body := placeStake(t, alice, marketID, true, 10)
		if code != http.StatusConflict {
			t.Fatalf("late stake: want 409, got %d (%s)", code, body)
		}
	})
}

func TestE2E_RefundFlow(t *testing.T) {
	waitUntilReady(t)

	alice := createUser(t)
	marketID := createMarket(t)

	code, body := placeStake(t, alice, marketID, true, 30)
	if code != http.StatusCreated {
		t.Fatalf("stake: want 201, got %d (%s)", code, body)
	}
	if got := getBalance(t, alice); got != 70 {
		t.Fatalf("after stake: want 70, got %d", got)
	}

	code, body = doJSON(t, http.MethodPost, fmt.Sprintf("/markets/%d/refund", marketID), nil)
	if code != http.StatusOK {
		t.Fatalf("refund: want 200, got %d (%s)", code, body)
	}

	var result struct {
		Refunded bool `json:"refunded"`
		Market   struct {
			Resolved bool  `json:"resolved"`
			Outcome  *bool `json:"outcome"`
		} `json:"market"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode settlement: %v", err)
	}
	if !result.Refunded {
		t.Fatalf("refunded flag not set: %s", body)
	}
	if !result.Market.Resolved || result.Market.Outcome != nil {
		t.Fatalf("voided market state: %s", body)
	}

	if got := getBalance(t, alice); got != 100 {
		t.Fatalf("after refund: want 100, got %d", got)
	}

	// Voided market rejects everything afterwards.
	code, _ = placeStake(t, alice, marketID, true, 10)
	if code != http.StatusConflict {
		t.Fatalf("stake on voided market: want 409, got %d", code)
	}
	code, _ = doJSON(t, http.MethodPost, fmt.Sprintf("/markets/%d/refund", marketID), nil)
	if code != http.StatusConflict {
		t.Fatalf("second refund: want 409, got %d", code)
	}
}

func TestE2E_Validation(t *testing.T) {
	waitUntilReady(t)

	alice := createUser(t)
	marketID := createMarket(t)

	t.Run("zero_amount", func(t *testing.T) {
		code, _ := placeStake(t, alice, marketID, true, 0)
		if code != http.StatusBadRequest {
			t.Fatalf("zero amount: want 400, got %d", code)
		}
	})

	t.Run("missing_prediction", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPost, fmt.Sprintf("/markets/%d/stakes", marketID), map[string]any{
			"userId": alice,
			"amount": 10,
		})
		if code != http.StatusBadRequest {
			t.Fatalf("missing prediction: want 400, got %d", code)
		}
	})

	t.Run("unknown_market", func(t *testing.T) {
		code, _ := placeStake(t, alice, 424242, true, 10)
		if code != http.StatusNotFound {
			t.Fatalf("unknown market: want 404, got %d", code)
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		code, _ := placeStake(t, 424242, marketID, true, 10)
		if code != http.StatusNotFound {
			t.Fatalf("unknown user: want 404, got %d", code)
		}
	})
}
