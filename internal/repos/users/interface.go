package users

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// StartingBalance is granted to every new account.
const StartingBalance int64 = 100

type User struct {
	ID        uint64
	Username  string
	Email     string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Users interface {
	Create(ctx context.Context, username, email string) (User, error)
	Get(ctx context.Context, userID uint64) (User, error)
	Exists(tx *sql.Tx, userID uint64) error
	GetBalance(ctx context.Context, userID uint64) (int64, error)
	LockAndGetBalance(tx *sql.Tx, userID uint64) (int64, error)
	IncreaseBalance(tx *sql.Tx, userID uint64, amount int64) error
	DecreaseBalance(tx *sql.Tx, userID uint64, amount int64) error
	Leaderboard(ctx context.Context, limit int) ([]User, error)
}
