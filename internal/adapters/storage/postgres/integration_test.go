//go:build integration
// +build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB levanta un Postgres efímero con el esquema ya migrado.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("petadoption"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Reset(ctx, db))
	require.NoError(t, Migrate(ctx, db), "Migrate must be idempotent")
	return db
}

func TestIntegration_Repos(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	usersRepo := NewUsersRepo(db)
	petsRepo := NewPetsRepo(db)
	adoptRepo := NewAdoptionsRepo(db)

	t.Run("users uniqueness", func(t *testing.T) {
		require.NoError(t, usersRepo.Create(ctx, users.User{ID: "u-1", Username: "alice", Email: "a@x.io", PasswordHash: "h", CreatedAt: now}))

		err := usersRepo.Create(ctx, users.User{ID: "u-2", Username: "alice", Email: "b@x.io", PasswordHash: "h", CreatedAt: now})
		assert.ErrorIs(t, err, users.ErrUsernameTaken)

		err = usersRepo.Create(ctx, users.User{ID: "u-3", Username: "bob", Email: "a@x.io", PasswordHash: "h", CreatedAt: now})
		assert.ErrorIs(t, err, users.ErrEmailTaken)

		got, err := usersRepo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "u-1", got.ID)

		_, err = usersRepo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, users.ErrNotFound)
	})

	t.Run("pets filter and update", func(t *testing.T) {
		owner := "u-1"
		require.NoError(t, petsRepo.Create(ctx, pets.Pet{ID: "p-dog", Name: "Milo", Species: "dog", Age: 2, CreatedAt: now, UpdatedAt: now}))
		require.NoError(t, petsRepo.Create(ctx, pets.Pet{ID: "p-cat", Name: "Luna", Species: "cat", Age: 1, CreatedAt: now.Add(time.Second), UpdatedAt: now}))
		require.NoError(t, petsRepo.Create(ctx, pets.Pet{ID: "p-owned", Name: "Rex", Species: "dog", Age: 5, Adopted: true, UserID: &owner, CreatedAt: now.Add(2 * time.Second), UpdatedAt: now}))

		dog := pets.SpeciesDog
		available := false
		got, err := petsRepo.List(ctx, pets.Filter{Species: &dog, Adopted: &available})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p-dog", got[0].ID)

		all, err := petsRepo.List(ctx, pets.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		owned, err := petsRepo.ListByOwner(ctx, "u-1")
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.True(t, owned[0].OwnedBy("u-1"))

		require.NoError(t, petsRepo.Update(ctx, pets.Pet{ID: "p-cat", Name: "Luna II", Species: "cat", Age: 3, UpdatedAt: now.Add(time.Minute)}))
		cat, err := petsRepo.GetByID(ctx, "p-cat")
		require.NoError(t, err)
		assert.Equal(t, "Luna II", cat.Name)
		assert.False(t, cat.Adopted)
		assert.Nil(t, cat.UserID)

		assert.ErrorIs(t, petsRepo.Update(ctx, pets.Pet{ID: "missing", Name: "x", Species: "dog"}), pets.ErrNotFound)
	})

	t.Run("concurrent adopt", func(t *testing.T) {
		const n = 10
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs <- adoptRepo.MarkAdopted(ctx, "p-dog", "u-1", adoptions.HistoryEntry{
					ID:        fmt.Sprintf("h-%d", i),
					PetID:     "p-dog",
					UserID:    "u-1",
					Username:  "alice",
					AdoptedAt: now,
				})
			}(i)
		}
		wg.Wait()
		close(errs)

		ok := 0
		for err := range errs {
			if err == nil {
				ok++
				continue
			}
			assert.True(t, errors.Is(err, adoptions.ErrAlreadyAdopted), "unexpected: %v", err)
		}
		assert.Equal(t, 1, ok)

		h, err := adoptRepo.ListHistory(ctx, "p-dog")
		require.NoError(t, err)
		assert.Len(t, h, 1)

		err = adoptRepo.MarkAdopted(ctx, "missing", "u-1", adoptions.HistoryEntry{ID: "h-x", AdoptedAt: now})
		assert.ErrorIs(t, err, pets.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		assert.ErrorIs(t, petsRepo.Delete(ctx, "p-dog"), pets.ErrHasHistory)
		require.NoError(t, petsRepo.Delete(ctx, "p-cat"))
		assert.ErrorIs(t, petsRepo.Delete(ctx, "p-cat"), pets.ErrNotFound)
	})
}
