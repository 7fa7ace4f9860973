// Package ledger admits new stakes: it validates the bet, debits the user's
// balance and records the stake as one atomic unit.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/provenews/provemarket/internal/infra/pgutils"
	"github.com/provenews/provemarket/internal/repos/markets"
	pgmarkets "github.com/provenews/provemarket/internal/repos/markets/postgres"
	"github.com/provenews/provemarket/internal/repos/stakes"
	pgstakes "github.com/provenews/provemarket/internal/repos/stakes/postgres"
	"github.com/provenews/provemarket/internal/repos/users"
	pgusers "github.com/provenews/provemarket/internal/repos/users/postgres"
)

var ErrInvalidAmount = errors.New("stake amount must be positive")

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

// PlaceStake runs the full flow in a single DB transaction:
//
// 1) Ensure user exists.
// 2) Lock market row FOR SHARE; reject resolved markets.
// 3) Lock user row (FOR UPDATE), check balance covers the stake.
// 4) Debit the balance.
// 5) Insert the stake row.
//
// The shared market lock keeps resolution out until this transaction ends,
// so an accepted stake is always part of the payout computation.
func (s *Service) PlaceStake(ctx context.Context, userID, marketID uint64, prediction bool, amount int64) (stakes.Stake, error) {
	if amount <= 0 {
		return stakes.Stake{}, ErrInvalidAmount
	}

	var placed stakes.Stake

	err := pgutils.WithTxRetry(ctx, s.db, func(tx *sql.Tx) error {
		// 1) Ensure user exists
		err := s.users.Exists(tx, userID)
		if err != nil {
			return fmt.Errorf("check user exists: %w", err)
		}

		// 2) Market must be open
		market, err := s.markets.LockShared(tx, marketID)
		if err != nil {
			return fmt.Errorf("lock market: %w", err)
		}
		if market.Resolved {
			return markets.ErrMarketResolved
		}

		// 3) Lock user row
		balance, err := s.users.LockAndGetBalance(tx, userID)
		if err != nil {
			return fmt.Errorf("lock and get balance: %w", err)
		}
		if balance < amount {
			return fmt.Errorf("pre-check debit: %w", users.ErrInsufficientFunds)
		}

		// 4) Debit
		err = s.users.DecreaseBalance(tx, userID, amount)
		if err != nil {
			return fmt.Errorf("decrease balance: %w", err)
		}

		// 5) Record the stake
		placed, err = s.stakes.Insert(tx, stakes.Stake{
			ID:          uuid.New(),
			UserID:      userID,
			MarketID:    marketID,
			Prediction:  prediction,
			StakeAmount: amount,
		})
		if err != nil {
			return fmt.Errorf("insert stake: %w", err)
		}

		return nil
	})
	if err != nil {
		return stakes.Stake{}, fmt.Errorf("place stake: %w", err)
	}

	return placed, nil
}

// UserStakes returns every stake a user has placed, newest first.
func (s *Service) UserStakes(ctx context.Context, userID uint64) ([]stakes.Stake, error) {
	_, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	list, err := s.stakes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user stakes: %w", err)
	}

	return list, nil
}
