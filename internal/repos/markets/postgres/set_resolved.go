package markets

import (
	"database/sql"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/markets"
)

func (r *marketsRepo) SetResolved(tx *sql.Tx, marketID uint64, outcome *bool) error {
	res, err := tx.Exec(`
		UPDATE markets
		SET resolved = TRUE, outcome = $2
		WHERE id = $1
		  AND NOT resolved
	`, marketID, outcome)
	if err != nil {
		return fmt.Errorf("set resolved: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return markets.ErrMarketResolved
	}

	return nil
}
