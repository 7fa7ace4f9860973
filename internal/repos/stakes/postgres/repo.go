package stakes

import (
	"database/sql"

	"github.com/provenews/provemarket/internal/repos/stakes"
)

var _ stakes.Stakes = (*stakesRepo)(nil)

type stakesRepo struct{ db *sql.DB }

func New(db *sql.DB) *stakesRepo {
	return &stakesRepo{db: db}
}
