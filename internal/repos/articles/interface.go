package articles

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")
var ErrArticleExists = errors.New("article already exists")

type Article struct {
	ID          uint64
	SourceName  string
	Author      string
	Title       string
	Description string
	URL         string
	URLToImage  string
	PublishedAt time.Time
	Content     string
	Category    string
	CreatedAt   time.Time
}

// NewArticle carries the fields the caller supplies; id and created_at come
// from the database.
type NewArticle struct {
	SourceName  string
	Author      string
	Title       string
	Description string
	URL         string
	URLToImage  string
	PublishedAt time.Time
	Content     string
	Category    string
}

type ListOptions struct {
	Category string
	Limit    int
	Offset   int
}

type Articles interface {
	Create(ctx context.Context, a NewArticle) (Article, error)
	Get(ctx context.Context, articleID uint64) (Article, error)
	Exists(tx *sql.Tx, articleID uint64) error
	List(ctx context.Context, opts ListOptions) ([]Article, error)
	// ListUnpromoted returns articles that do not have a market yet.
	ListUnpromoted(ctx context.Context, limit int) ([]Article, error)
}
