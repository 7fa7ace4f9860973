package articles

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/provenews/provemarket/internal/repos/articles"
)

func (r *articlesRepo) Create(ctx context.Context, a articles.NewArticle) (articles.Article, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO articles (
			source_name, author, title, description, url,
			url_to_image, published_at, content, category
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING`+articleColumns,
		a.SourceName, a.Author, a.Title, a.Description, a.URL,
		a.URLToImage, a.PublishedAt, a.Content, a.Category,
	)

	created, err := scanArticle(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on url
			return articles.Article{}, articles.ErrArticleExists
		}

		return articles.Article{}, fmt.Errorf("insert article: %w", err)
	}

	return created, nil
}
