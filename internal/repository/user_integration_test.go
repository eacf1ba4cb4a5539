package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/userd/userd/internal/model"
	"github.com/userd/userd/internal/testutil"
)

// setupRepo connects to the test database, serializes access and resets
// the users schema. Tests are skipped when TEST_DATABASE_URL is not set.
func setupRepo(t *testing.T) (*Repository, context.Context) {
	t.Helper()

	databaseURL := testutil.RequireEnv(t, "TEST_DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	repo, err := New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("failed to acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		if err := unlock(); err != nil {
			t.Errorf("failed to release db lock: %v", err)
		}
	})

	if err := testutil.ResetUsersSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("failed to reset schema: %v", err)
	}

	return repo, ctx
}

func TestRepository_CreateAndList(t *testing.T) {
	repo, ctx := setupRepo(t)

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(users))
	}

	err = repo.CreateUser(ctx, model.NewUser{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@email.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	users, err = repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 row, got %d", len(users))
	}
	if users[0].ID == 0 {
		t.Error("expected database-assigned identifier")
	}
	if users[0].Email != "ada@email.com" {
		t.Errorf("unexpected row: %+v", users[0])
	}
}

func TestRepository_GetUser(t *testing.T) {
	repo, ctx := setupRepo(t)

	if err := repo.CreateUser(ctx, model.NewUser{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@email.com",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	got, err := repo.GetUser(ctx, users[0].ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.FirstName != "Ada" {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := repo.GetUser(ctx, 999999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRepository_UpdateUser(t *testing.T) {
	repo, ctx := setupRepo(t)

	if err := repo.CreateUser(ctx, model.NewUser{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@email.com",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	users, _ := repo.ListUsers(ctx)
	id := users[0].ID

	err := repo.UpdateUser(ctx, id, model.UpdateUser{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@email.com",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := repo.GetUser(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.FirstName != "Grace" || got.Email != "grace@email.com" {
		t.Errorf("update did not persist: %+v", got)
	}

	err = repo.UpdateUser(ctx, 999999, model.UpdateUser{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@email.com",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for missing row, got %v", err)
	}
}

func TestRepository_DeleteUser(t *testing.T) {
	repo, ctx := setupRepo(t)

	if err := repo.CreateUser(ctx, model.NewUser{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@email.com",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	users, _ := repo.ListUsers(ctx)
	id := users[0].ID

	if err := repo.DeleteUser(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.GetUser(ctx, id); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after delete, got %v", err)
	}

	if err := repo.DeleteUser(ctx, id); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for second delete, got %v", err)
	}
}

func TestRepository_SeedUsers_Idempotent(t *testing.T) {
	repo, ctx := setupRepo(t)

	if err := repo.SeedUsers(ctx); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := repo.SeedUsers(ctx); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected exactly 2 seeded rows, got %d", len(users))
	}

	if users[0].ID != 1 || users[0].FirstName != "John" {
		t.Errorf("unexpected first seed row: %+v", users[0])
	}
	if users[1].ID != 2 || users[1].FirstName != "Jane" {
		t.Errorf("unexpected second seed row: %+v", users[1])
	}
}
