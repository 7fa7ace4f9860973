package markets

import (
	"database/sql"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/markets"
)

func (r *marketsRepo) Delete(tx *sql.Tx, marketID uint64) error {
	res, err := tx.Exec(`
		DELETE FROM markets
		WHERE id = $1
	`, marketID)
	if err != nil {
		return fmt.Errorf("delete market: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return markets.ErrMarketNotFound
	}

	return nil
}
