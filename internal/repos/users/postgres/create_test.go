package users

import (
	"context"
	"errors"
	"testing"

	"github.com/provenews/provemarket/internal/infra/pgtestutil"
	"github.com/provenews/provemarket/internal/repos/users"
)

func TestUsers_Create(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == 0 {
		t.Fatal("created user has no id")
	}
	if created.Username != "alice" || created.Email != "alice@example.com" {
		t.Fatalf("created user: %+v", created)
	}
	if created.Balance != users.StartingBalance {
		t.Fatalf("starting balance: want %d, got %d", users.StartingBalance, created.Balance)
	}

	// Username and email are both unique.
	_, err = repo.Create(ctx, "alice", "other@example.com")
	if !errors.Is(err, users.ErrUserExists) {
		t.Fatalf("duplicate username: want ErrUserExists, got %v", err)
	}
	_, err = repo.Create(ctx, "alice2", "alice@example.com")
	if !errors.Is(err, users.ErrUserExists) {
		t.Fatalf("duplicate email: want ErrUserExists, got %v", err)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.Username != created.Username {
		t.Fatalf("get after create: want %+v, got %+v", created, got)
	}

	_, err = repo.Get(ctx, 999_999)
	if !errors.Is(err, users.ErrUserNotFound) {
		t.Fatalf("get unknown: want ErrUserNotFound, got %v", err)
	}
}

func TestUsers_Leaderboard(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)
	ctx := context.Background()

	upsertUser(t, db, 1, 50)
	upsertUser(t, db, 2, 300)
	upsertUser(t, db, 3, 300)
	upsertUser(t, db, 4, 120)

	top, err := repo.Leaderboard(ctx, 3)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("want 3 rows, got %d", len(top))
	}

	// Descending balance, ties broken by id.
	wantIDs := []uint64{2, 3, 4}
	for i, u := range top {
		if u.ID != wantIDs[i] {
			t.Fatalf("row %d: want user %d, got %d (balance %d)", i, wantIDs[i], u.ID, u.Balance)
		}
	}
}
