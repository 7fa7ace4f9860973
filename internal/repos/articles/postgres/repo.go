package articles

import (
	"database/sql"

	"github.com/provenews/provemarket/internal/repos/articles"
)

var _ articles.Articles = (*articlesRepo)(nil)

type articlesRepo struct{ db *sql.DB }

func New(db *sql.DB) *articlesRepo {
	return &articlesRepo{db: db}
}

const articleColumns = `
	id, source_name, author, title, description, url,
	url_to_image, published_at, content, category, created_at`

func scanArticle(row interface{ Scan(...any) error }) (articles.Article, error) {
	var a articles.Article

	err := row.Scan(
		&a.ID, &a.SourceName, &a.Author, &a.Title, &a.Description, &a.URL,
		&a.URLToImage, &a.PublishedAt, &a.Content, &a.Category, &a.CreatedAt,
	)
	if err != nil {
		return articles.Article{}, err
	}

	return a, nil
}
