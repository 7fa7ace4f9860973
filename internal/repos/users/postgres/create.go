package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/provenews/provemarket/internal/repos/users"
)

func (r *usersRepo) Create(ctx context.Context, username, email string) (users.User, error) {
	var u users.User

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, balance)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, balance, created_at, updated_at
	`, username, email, users.StartingBalance).Scan(
		&u.ID, &u.Username, &u.Email, &u.Balance, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return users.User{}, users.ErrUserExists
		}

		return users.User{}, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}
