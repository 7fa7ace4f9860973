package articles

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/articles"
)

func (r *articlesRepo) List(ctx context.Context, opts articles.ListOptions) ([]articles.Article, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT`+articleColumns+`
		FROM articles
		WHERE ($1 = '' OR category = $1)
		ORDER BY published_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, opts.Category, limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

func (r *articlesRepo) ListUnpromoted(ctx context.Context, limit int) ([]articles.Article, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT`+articleColumns+`
		FROM articles a
		WHERE NOT EXISTS (SELECT 1 FROM markets m WHERE m.article_id = a.id)
		ORDER BY published_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query unpromoted articles: %w", err)
	}
	defer rows.Close()

	return collectArticles(rows)
}

func collectArticles(rows *sql.Rows) ([]articles.Article, error) {
	var result []articles.Article

	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}

		result = append(result, a)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	return result, nil
}
