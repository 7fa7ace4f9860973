// Package settlement resolves a market exactly once: it flips the market to
// resolved and applies every payout or refund in the same transaction, so no
// reader can see one without the other.
package settlement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/provenews/provemarket/internal/infra/pgutils"
	"github.com/provenews/provemarket/internal/repos/markets"
	pgmarkets "github.com/provenews/provemarket/internal/repos/markets/postgres"
	"github.com/provenews/provemarket/internal/repos/stakes"
	pgstakes "github.com/provenews/provemarket/internal/repos/stakes/postgres"
	"github.com/provenews/provemarket/internal/repos/users"
	pgusers "github.com/provenews/provemarket/internal/repos/users/postgres"
)

// Settlement reports what a resolution or void did.
type Settlement struct {
	Market   markets.Market
	Pool     int64
	Credits  []Credit
	Refunded bool
}

type Service struct {
	db      *sql.DB
	users   users.Users
	markets markets.Markets
	stakes  stakes.Stakes
}

func New(db *sql.DB) *Service {
	return &Service{
		db:      db,
		users:   pgusers.New(db),
		markets: pgmarkets.New(db),
		stakes:  pgstakes.New(db),
	}
}

// Resolve settles the market against outcome, in a single DB transaction:
//
// 1) Lock market row FOR UPDATE; reject if already resolved.
// 2) Mark resolved, store outcome.
// 3) Read the full stake set (frozen by the lock).
// 4) Compute credits (proportional payout, or 1:1 refund with no winners).
// 5) Credit every balance.
//
// Retrying a resolved market fails with markets.ErrMarketResolved; credits
// are never applied twice.
func (s *Service) Resolve(ctx context.Context, marketID uint64, outcome bool) (Settlement, error) {
	return s.settle(ctx, marketID, &outcome)
}

// RefundAll voids an open market: every stake is refunded at its original
// amount and the market closes with no outcome. Used when the underlying
// article is retracted rather than judged.
func (s *Service) RefundAll(ctx context.Context, marketID uint64) (Settlement, error) {
	return s.settle(ctx, marketID, nil)
}

func (s *Service) settle(ctx context.Context, marketID uint64, outcome *bool) (Settlement, error) {
	var result Settlement

	err := pgutils.WithTxRetry(ctx, s.db, func(tx *sql.Tx) error {
		market, err := s.markets.LockExclusive(tx, marketID)
		if err != nil {
			return fmt.Errorf("lock market: %w", err)
		}
		if market.Resolved {
			return markets.ErrMarketResolved
		}

		err = s.markets.SetResolved(tx, marketID, outcome)
		if err != nil {
			return fmt.Errorf("mark resolved: %w", err)
		}

		all, err := s.stakes.ListByMarket(tx, marketID)
		if err != nil {
			return fmt.Errorf("list stakes: %w", err)
		}

		var pool int64
		for _, st := range all {
			pool += st.StakeAmount
		}

		var credits []Credit
		refunded := true

		if outcome != nil {
			credits, refunded = SettlePool(all, *outcome)
		} else {
			credits = refundCredits(all)
		}

		for _, c := range credits {
			err = s.users.IncreaseBalance(tx, c.UserID, c.Amount)
			if err != nil {
				return fmt.Errorf("credit user %d: %w", c.UserID, err)
			}
		}

		market.Resolved = true
		market.Outcome = outcome

		result = Settlement{
			Market:   market,
			Pool:     pool,
			Credits:  credits,
			Refunded: refunded,
		}

		return nil
	})
	if err != nil {
		return Settlement{}, fmt.Errorf("settle market: %w", err)
	}

	return result, nil
}
