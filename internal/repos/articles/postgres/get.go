package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/articles"
)

func (r *articlesRepo) Get(ctx context.Context, articleID uint64) (articles.Article, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+articleColumns+`
		FROM articles
		WHERE id = $1
	`, articleID)

	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return articles.Article{}, articles.ErrArticleNotFound
		}

		return articles.Article{}, fmt.Errorf("get article: %w", err)
	}

	return a, nil
}

func (r *articlesRepo) Exists(tx *sql.Tx, articleID uint64) error {
	var exists bool

	err := tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)
	`, articleID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}

	if !exists {
		return articles.ErrArticleNotFound
	}

	return nil
}
