package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]User
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	r.byID[u.ID] = u
	r.order = append(r.order, u.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func newTestService() *Service {
	return newService(newTestRepo(), bcrypt.MinCost)
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_HashesPassword(t *testing.T) {
	svc := newTestService()
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: " alice ",
		Email:    "Alice@Example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, now, u.CreatedAt)
	assert.NotEqual(t, "hunter22", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))
}

func TestService_Register_Conflicts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "bob", Email: "A@X.io", Password: "pw"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Register(ctx, RegisterInput{Username: "alice", Email: "other@x.io", Password: "pw"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.ErrorIs(t, err, ErrConflict)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestService_Register_InvalidInput(t *testing.T) {
	svc := newTestService()

	cases := []RegisterInput{
		{Username: "", Email: "a@x.io", Password: "pw"},
		{Username: "alice", Email: "", Password: "pw"},
		{Username: "alice", Email: "not-an-email", Password: "pw"},
		{Username: "alice", Email: "a@x.io", Password: ""},
		{Username: "alice", Email: "a@x.io", Password: strings.Repeat("x", 73)},
	}
	for _, in := range cases {
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", in)
	}
}

func TestService_Login(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.io", Password: "hunter22"})
	require.NoError(t, err)

	id, err := svc.Login(ctx, "alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, auth.Identity{UserID: u.ID, Username: "alice"}, id)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	_, err = svc.Login(ctx, "nobody", "hunter22")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestService_Login_PropagatesRepoFailure(t *testing.T) {
	boom := errors.New("db down")
	svc := newService(failingRepo{err: boom}, bcrypt.MinCost)

	_, err := svc.Login(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, auth.ErrUnauthorized)
}

func TestService_GetByID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(ctx, " ")
	assert.ErrorIs(t, err, ErrNotFound)
}

type failingRepo struct{ err error }

func (f failingRepo) Create(context.Context, User) error { return f.err }
func (f failingRepo) GetByID(context.Context, string) (User, error) {
	return User{}, f.err
}
func (f failingRepo) GetByUsername(context.Context, string) (User, error) {
	return User{}, f.err
}
func (f failingRepo) List(context.Context) ([]User, error) { return nil, f.err }
