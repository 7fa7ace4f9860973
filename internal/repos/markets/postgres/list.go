package markets

import (
	"context"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/markets"
)

func (r *marketsRepo) List(ctx context.Context, opts markets.ListOptions) ([]markets.Market, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.article_id, m.resolved, m.outcome, m.created_at
		FROM markets m
		JOIN articles a ON a.id = m.article_id
		WHERE ($1 OR NOT m.resolved)
		  AND ($2 = '' OR a.category = $2)
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $3 OFFSET $4
	`, opts.IncludeResolved, opts.Category, limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("query markets: %w", err)
	}
	defer rows.Close()

	var result []markets.Market

	for rows.Next() {
		var m markets.Market

		err = rows.Scan(&m.ID, &m.ArticleID, &m.Resolved, &m.Outcome, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan market: %w", err)
		}

		result = append(result, m)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate markets: %w", err)
	}

	return result, nil
}
