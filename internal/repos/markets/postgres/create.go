package markets

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/provenews/provemarket/internal/repos/markets"
)

func (r *marketsRepo) Create(tx *sql.Tx, articleID uint64) (markets.Market, error) {
	var m markets.Market

	err := tx.QueryRow(`
		INSERT INTO markets (article_id)
		VALUES ($1)
		RETURNING id, article_id, resolved, outcome, created_at
	`, articleID).Scan(&m.ID, &m.ArticleID, &m.Resolved, &m.Outcome, &m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on article_id
			return markets.Market{}, markets.ErrArticleHasMarket
		}

		return markets.Market{}, fmt.Errorf("insert market: %w", err)
	}

	return m, nil
}
