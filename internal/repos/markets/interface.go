package markets

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrMarketNotFound = errors.New("market not found")
var ErrMarketResolved = errors.New("market already resolved")
var ErrArticleHasMarket = errors.New("article already has a market")

type Market struct {
	ID        uint64
	ArticleID uint64
	Resolved  bool
	// Outcome is nil while the market is open, and stays nil for a
	// voided (refunded) market.
	Outcome   *bool
	CreatedAt time.Time
}

// ListOptions filters List. A zero value lists open markets, newest first.
type ListOptions struct {
	IncludeResolved bool
	Category        string
	Limit           int
	Offset          int
}

type Markets interface {
	Create(tx *sql.Tx, articleID uint64) (Market, error)
	Get(ctx context.Context, marketID uint64) (Market, error)
	GetByArticle(ctx context.Context, articleID uint64) (Market, error)
	List(ctx context.Context, opts ListOptions) ([]Market, error)

	// LockShared takes a FOR SHARE lock on the market row, held until the
	// surrounding transaction ends. Stake placement uses it so that
	// resolution (which locks FOR UPDATE) cannot interleave with an
	// in-flight placement.
	LockShared(tx *sql.Tx, marketID uint64) (Market, error)
	// LockExclusive takes the FOR UPDATE lock used by resolution and
	// deletion. It waits out every in-flight placement and blocks new ones.
	LockExclusive(tx *sql.Tx, marketID uint64) (Market, error)

	// SetResolved flips the market to resolved. A nil outcome voids the
	// market (refund path) rather than settling it.
	SetResolved(tx *sql.Tx, marketID uint64, outcome *bool) error
	Delete(tx *sql.Tx, marketID uint64) error
}
