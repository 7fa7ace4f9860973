package users

import (
	"context"
	"fmt"

	"github.com/provenews/provemarket/internal/repos/users"
)

func (r *usersRepo) Leaderboard(ctx context.Context, limit int) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, email, balance, created_at, updated_at
		FROM users
		ORDER BY balance DESC, id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var result []users.User

	for rows.Next() {
		var u users.User

		err = rows.Scan(&u.ID, &u.Username, &u.Email, &u.Balance, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}

		result = append(result, u)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return result, nil
}
