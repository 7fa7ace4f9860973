package stakes

import (
	"context"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/stakes"
)

func (r *stakesRepo) MarketBreakdown(ctx context.Context, marketID uint64) (stakes.Breakdown, error) {
	var b stakes.Breakdown

	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(stake_amount), 0),
			COUNT(*) FILTER (WHERE prediction),
			COUNT(*) FILTER (WHERE NOT prediction),
			COALESCE(SUM(stake_amount) FILTER (WHERE prediction), 0),
			COALESCE(SUM(stake_amount) FILTER (WHERE NOT prediction), 0)
		FROM stakes
		WHERE market_id = $1
	`, marketID).Scan(
		&b.TotalStakes,
		&b.TotalStakeAmount,
		&b.TrueCount,
		&b.FalseCount,
		&b.TrueAmount,
		&b.FalseAmount,
	)
	if err != nil {
		return stakes.Breakdown{}, fmt.Errorf("aggregate market stakes: %w", err)
	}

	return b, nil
}
