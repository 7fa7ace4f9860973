package markets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/markets"
)

func (r *marketsRepo) Get(ctx context.Context, marketID uint64) (markets.Market, error) {
	var m markets.Market

	err := r.db.QueryRowContext(ctx, `
		SELECT id, article_id, resolved, outcome, created_at
		FROM markets
		WHERE id = $1
	`, marketID).Scan(&m.ID, &m.ArticleID, &m.Resolved, &m.Outcome, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return markets.Market{}, markets.ErrMarketNotFound
		}

		return markets.Market{}, fmt.Errorf("get market: %w", err)
	}

	return m, nil
}

func (r *marketsRepo) GetByArticle(ctx context.Context, articleID uint64) (markets.Market, error) {
	var m markets.Market

	err := r.db.QueryRowContext(ctx, `
		SELECT id, article_id, resolved, outcome, created_at
		FROM markets
		WHERE article_id = $1
	`, articleID).Scan(&m.ID, &m.ArticleID, &m.Resolved, &m.Outcome, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return markets.Market{}, markets.ErrMarketNotFound
		}

		return markets.Market{}, fmt.Errorf("get market by article: %w", err)
	}

	return m, nil
}
