package stakes

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Stake is immutable once inserted. Resolution only credits balances; it
// never rewrites stake rows.
type Stake struct {
	ID          uuid.UUID
	UserID      uint64
	MarketID    uint64
	Prediction  bool
	StakeAmount int64
	CreatedAt   time.Time
}

// Breakdown is a per-side aggregate over one market's stakes, computed in a
// single statement so it is always one consistent snapshot.
type Breakdown struct {
	TotalStakes      int64
	TotalStakeAmount int64
	TrueCount        int64
	FalseCount       int64
	TrueAmount       int64
	FalseAmount      int64
}

type Stakes interface {
	Insert(tx *sql.Tx, s Stake) (Stake, error)
	// ListByMarket runs inside the resolution transaction; the market row
	// lock taken by the caller is what freezes the stake set.
	ListByMarket(tx *sql.Tx, marketID uint64) ([]Stake, error)
	ListByUser(ctx context.Context, userID uint64) ([]Stake, error)
	MarketBreakdown(ctx context.Context, marketID uint64) (Breakdown, error)
}
