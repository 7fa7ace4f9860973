package markets

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/markets"
)

func (r *marketsRepo) LockShared(tx *sql.Tx, marketID uint64) (markets.Market, error) {
	return lockRow(tx, marketID, "FOR SHARE")
}

func (r *marketsRepo) LockExclusive(tx *sql.Tx, marketID uint64) (markets.Market, error) {
	return lockRow(tx, marketID, "FOR UPDATE")
}

func lockRow(tx *sql.Tx, marketID uint64, lock string) (markets.Market, error) {
	var m markets.Market

	err := tx.QueryRow(`
		SELECT id, article_id, resolved, outcome, created_at
		FROM markets
		WHERE id = $1
	`+lock, marketID).Scan(&m.ID, &m.ArticleID, &m.Resolved, &m.Outcome, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return markets.Market{}, markets.ErrMarketNotFound
		}

		return markets.Market{}, fmt.Errorf("lock market: %w", err)
	}

	return m, nil
}
