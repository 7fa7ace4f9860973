package markets

import (
	"database/sql"

	"github.com/provenews/provemarket/internal/repos/markets"
)

var _ markets.Markets = (*marketsRepo)(nil)

type marketsRepo struct{ db *sql.DB }

func New(db *sql.DB) *marketsRepo {
	return &marketsRepo{db: db}
}
