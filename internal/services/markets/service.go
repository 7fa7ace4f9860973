// Package markets owns the market lifecycle around the settlement core:
// promoting an article to a market, listing, open-only deletion and
// read-only statistics.
package markets

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/provenews/provemarket/internal/infra/pgutils"
	"github.com/provenews/provemarket/internal/repos/articles"
	pgarticles "github.com/provenews/provemarket/internal/repos/articles/postgres"
	marketrepo "github.com/provenews/provemarket/internal/repos/markets"
	pgmarkets "github.com/provenews/provemarket/internal/repos/markets/postgres"
	"github.com/provenews/provemarket/internal/repos/stakes"
	pgstakes "github.com/provenews/provemarket/internal/repos/stakes/postgres"
	"github.com/provenews/provemarket/internal/repos/users"
	pgusers "github.com/provenews/provemarket/internal/repos/users/postgres"
)

// Statistics is a read-only aggregate over one market's stakes.
// TotalParticipants counts stakes, not distinct users, matching how
// participation has always been reported.
type Statistics struct {
	TotalParticipants int64
	TotalStakeAmount  int64
	TrueCount         int64
	FalseCount        int64
	TrueAmount        int64
	FalseAmount       int64
}

type Service struct {
	db       *sql.DB
	users    users.Users
	articles articles.Articles
	markets  marketrepo.Markets
	stakes   stakes.Stakes
}

func New(db *sql.DB) *Service {
	return &Service{
		db:       db,
		users:    pgusers.New(db),
		articles: pgarticles.New(db),
		markets:  pgmarkets.New(db),
		stakes:   pgstakes.New(db),
	}
}

// CreateForArticle promotes an article to a market. An article carries at
// most one market, ever; the unique constraint backs that up even under
// concurrent promotion.
func (s *Service) CreateForArticle(ctx context.Context, articleID uint64) (marketrepo.Market, error) {
	var created marketrepo.Market

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		err := s.articles.Exists(tx, articleID)
		if err != nil {
			return fmt.Errorf("check article exists: %w", err)
		}

		created, err = s.markets.Create(tx, articleID)
		if err != nil {
			return fmt.Errorf("create market: %w", err)
		}

		return nil
	})
	if err != nil {
		return marketrepo.Market{}, fmt.Errorf("promote article: %w", err)
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, marketID uint64) (marketrepo.Market, error) {
	m, err := s.markets.Get(ctx, marketID)
	if err != nil {
		return marketrepo.Market{}, fmt.Errorf("get market: %w", err)
	}

	return m, nil
}

func (s *Service) List(ctx context.Context, opts marketrepo.ListOptions) ([]marketrepo.Market, error) {
	list, err := s.markets.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list markets: %w", err)
	}

	return list, nil
}

// Delete removes an open market. Its stakes are refunded first in the same
// transaction; the row delete then cascades over them. Resolved markets are
// settled history and cannot be deleted.
func (s *Service) Delete(ctx context.Context, marketID uint64) error {
	err := pgutils.WithTxRetry(ctx, s.db, func(tx *sql.Tx) error {
		market, err := s.markets.LockExclusive(tx, marketID)
		if err != nil {
			return fmt.Errorf("lock market: %w", err)
		}
		if market.Resolved {
			return marketrepo.ErrMarketResolved
		}

		all, err := s.stakes.ListByMarket(tx, marketID)
		if err != nil {
			return fmt.Errorf("list stakes: %w", err)
		}

		for _, st := range all {
			err = s.users.IncreaseBalance(tx, st.UserID, st.StakeAmount)
			if err != nil {
				return fmt.Errorf("refund user %d: %w", st.UserID, err)
			}
		}

		err = s.markets.Delete(tx, marketID)
		if err != nil {
			return fmt.Errorf("delete market: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("delete market: %w", err)
	}

	return nil
}

// Stats returns the per-side aggregate for one market as a single snapshot.
func (s *Service) Stats(ctx context.Context, marketID uint64) (Statistics, error) {
	_, err := s.markets.Get(ctx, marketID)
	if err != nil {
		return Statistics{}, fmt.Errorf("get market: %w", err)
	}

	b, err := s.stakes.MarketBreakdown(ctx, marketID)
	if err != nil {
		return Statistics{}, fmt.Errorf("market breakdown: %w", err)
	}

	return Statistics{
		TotalParticipants: b.TotalStakes,
		TotalStakeAmount:  b.TotalStakeAmount,
		TrueCount:         b.TrueCount,
		FalseCount:        b.FalseCount,
		TrueAmount:        b.TrueAmount,
		FalseAmount:       b.FalseAmount,
	}, nil
}
