package stakes

import (
	"database/sql"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/stakes"
)

func (r *stakesRepo) ListByMarket(tx *sql.Tx, marketID uint64) ([]stakes.Stake, error) {
	rows, err := tx.Query(`
		SELECT id, user_id, market_id, prediction, stake_amount, created_at
		FROM stakes
		WHERE market_id = $1
		ORDER BY created_at ASC, id ASC
	`, marketID)
	if err != nil {
		return nil, fmt.Errorf("query market stakes: %w", err)
	}
	defer rows.Close()

	return scanStakes(rows)
}

func scanStakes(rows *sql.Rows) ([]stakes.Stake, error) {
	var result []stakes.Stake

	for rows.Next() {
		var s stakes.Stake

		err := rows.Scan(&s.ID, &s.UserID, &s.MarketID, &s.Prediction, &s.StakeAmount, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan stake: %w", err)
		}

		result = append(result, s)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate stakes: %w", err)
	}

	return result, nil
}
