package stakes

import (
	"context"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/stakes"
)

func (r *stakesRepo) ListByUser(ctx context.Context, userID uint64) ([]stakes.Stake, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, market_id, prediction, stake_amount, created_at
		FROM stakes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user stakes: %w", err)
	}
	defer rows.Close()

	return scanStakes(rows)
}
