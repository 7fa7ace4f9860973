package stakes

import (
	"database/sql"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/stakes"
)

func (r *stakesRepo) Insert(tx *sql.Tx, s stakes.Stake) (stakes.Stake, error) {
	err := tx.QueryRow(`
		INSERT INTO stakes (id, user_id, market_id, prediction, stake_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, s.ID, s.UserID, s.MarketID, s.Prediction, s.StakeAmount).Scan(&s.CreatedAt)
	if err != nil {
		return stakes.Stake{}, fmt.Errorf("insert stake: %w", err)
	}

	return s, nil
}
