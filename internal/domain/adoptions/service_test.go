package adoptions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fakes
// -------------------------

// fakeStore hace de PetReader y Repository sobre el mismo mapa (como el adapter memory).
type fakeStore struct {
	mu      sync.Mutex
	pets    map[string]pets.Pet
	history []HistoryEntry
}

func newFakeStore(ps ...pets.Pet) *fakeStore {
	s := &fakeStore{pets: map[string]pets.Pet{}}
	for _, p := range ps {
		s.pets[p.ID] = p
	}
	return s
}

func (s *fakeStore) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (s *fakeStore) MarkAdopted(ctx context.Context, petID, userID string, e HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pets[petID]
	if !ok {
		return pets.ErrNotFound
	}
	if p.Adopted {
		return ErrAlreadyAdopted
	}
	p.Adopted = true
	p.UserID = &userID
	s.pets[petID] = p
	s.history = append(s.history, e)
	return nil
}

func (s *fakeStore) ListHistory(ctx context.Context, petID string) ([]HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HistoryEntry, 0)
	for _, e := range s.history {
		if e.PetID == petID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeLookup struct {
	mu    sync.Mutex
	users map[string]UserRef
	err   error
	calls int
}

func (f *fakeLookup) LookupUser(ctx context.Context, id string) (UserRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return UserRef{}, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return UserRef{}, ErrUserNotFound
	}
	return u, nil
}

type fakeVerifier map[string]auth.Claims

func (f fakeVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	c, ok := f[token]
	if !ok {
		return auth.Claims{}, auth.ErrUnauthorized
	}
	return c, nil
}

type fixture struct {
	svc     *Service
	store   *fakeStore
	lookup  *fakeLookup
	metrics *metrics.Registry
	now     time.Time
}

func newFixture(ps ...pets.Pet) *fixture {
	store := newFakeStore(ps...)
	lookup := &fakeLookup{users: map[string]UserRef{
		"u-1": {ID: "u-1", Username: "alice"},
		"u-2": {ID: "u-2", Username: "bob"},
	}}
	reg := metrics.NewRegistry("pet-service")

	svc := NewService(Deps{
		Repo:  store,
		Pets:  store,
		Users: lookup,
		Verifier: fakeVerifier{
			"tok-alice": {UserID: "u-1", Username: "alice"},
			"tok-bob":   {UserID: "u-2", Username: "bob"},
		},
		Metrics: reg.Adoptions,
	})
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return &fixture{svc: svc, store: store, lookup: lookup, metrics: reg, now: now}
}

func availablePet(id, species string) pets.Pet {
	return pets.Pet{ID: id, Name: "Pet " + id, Species: pets.Species(species), Age: 2}
}

// -------------------------
// Tests
// -------------------------

func TestService_Adopt_Success(t *testing.T) {
	f := newFixture(availablePet("p-1", "dog"))
	ctx := context.Background()

	res, err := f.svc.Adopt(ctx, AdoptInput{PetID: "p-1", UserID: "u-1", Token: "tok-alice"})
	require.NoError(t, err)
	assert.True(t, res.Pet.Adopted)
	assert.True(t, res.Pet.OwnedBy("u-1"))

	stored, err := f.store.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.True(t, stored.Adopted)
	assert.True(t, stored.OwnedBy("u-1"))

	h, err := f.svc.HistoryFor(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, h, 1)
	assert.Equal(t, "p-1", h[0].PetID)
	assert.Equal(t, "u-1", h[0].UserID)
	assert.Equal(t, "alice", h[0].Username)
	assert.Equal(t, f.now, h[0].AdoptedAt)
	assert.NotEmpty(t, h[0].ID)

	assert.Equal(t, 1.0, f.metrics.Adoptions.Count(metrics.OutcomeAdopted))
}

func TestService_Adopt_UsernameComesFromToken(t *testing.T) {
	f := newFixture(availablePet("p-1", "dog"))

	// bob adopta a nombre de alice: el historial registra a quien firmó el token.
	_, err := f.svc.Adopt(context.Background(), AdoptInput{PetID: "p-1", UserID: "u-1", Token: "tok-bob"})
	require.NoError(t, err)

	h, _ := f.svc.HistoryFor(context.Background(), "p-1")
	require.Len(t, h, 1)
	assert.Equal(t, "u-1", h[0].UserID)
	assert.Equal(t, "bob", h[0].Username)
}

func TestService_Adopt_Unauthorized(t *testing.T) {
	f := newFixture(availablePet("p-1", "dog"))

	for _, tok := range []string{"", "garbage"} {
		_, err := f.svc.Adopt(context.Background(), AdoptInput{PetID: "p-1", UserID: "u-1", Token: tok})
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
	}
	assert.Equal(t, 0, f.lookup.calls, "no upstream call before the token is verified")
	assert.Equal(t, 2.0, f.metrics.Adoptions.Count(metrics.OutcomeUnauthorized))
}

func TestService_Adopt_AlreadyAdopted(t *testing.T) {
	f := newFixture(availablePet("p-1", "dog"))
	ctx := context.Background()

	_, err := f.svc.Adopt(ctx, AdoptInput{PetID: "p-1", UserID: "u-1", Token: "tok-alice"})
	require.NoError(t, err)

	for _, in := range []AdoptInput{
		{PetID: "p-1", UserID: "u-1", Token: "tok-alice"},
		{PetID: "p-1", UserID: "u-2", Token: "tok-bob"},
	} {
		_, err = f.svc.Adopt(ctx, in)
		assert.ErrorIs(t, err, ErrAlreadyAdopted)
	}

	h, _ := f.svc.HistoryFor(ctx, "p-1")
	assert.Len(t, h, 1)

	stored, _ := f.store.GetByID(ctx, "p-1")
	assert.True(t, stored.OwnedBy("u-1"))
}

func TestService_Adopt_UnknownUser(t *testing.T) {
	f := newFixture(availablePet("p-1", "dog"))

	_, err := f.svc.Adopt(context.Background(), AdoptInput{PetID: "p-1", UserID: "ghost", Token: "tok-alice"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	stored, _ := f.store.GetByID(context.Background(), "p-1")
	assert.False(t, stored.Adopted)
	assert.Nil(t, stored.UserID)
}

func TestService_Adopt_UpstreamUnavailable_LeavesPetAvailable(t *testing.T) {
	f := newFixture(availablePet("p-1", "dog"))
	f.lookup.err = errors.Join(ErrUpstreamUnavailable, context.DeadlineExceeded)

	_, err := f.svc.Adopt(context.Background(), AdoptInput{PetID: "p-1", UserID: "u-1", Token: "tok-alice"})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	stored, _ := f.store.GetByID(context.Background(), "p-1")
	assert.False(t, stored.Adopted)
	assert.Nil(t, stored.UserID)

	h, _ := f.svc.HistoryFor(context.Background(), "p-1")
	assert.Empty(t, h)
	assert.Equal(t, 1.0, f.metrics.Adoptions.Count(metrics.OutcomeUpstreamFailure))
}

func TestService_Adopt_PetNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Adopt(context.Background(), AdoptInput{PetID: "missing", UserID: "u-1", Token: "tok-alice"})
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestService_Adopt_MissingIDs(t *testing.T) {
	f := newFixture(availablePet("p-1", "dog"))

	_, err := f.svc.Adopt(context.Background(), AdoptInput{PetID: "p-1", UserID: " ", Token: "tok-alice"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Adopt_ConcurrentSamePet_ExactlyOneWins(t *testing.T) {
	f := newFixture(availablePet("p-1", "dog"))

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := AdoptInput{PetID: "p-1", UserID: "u-1", Token: "tok-alice"}
			if i%2 == 1 {
				in = AdoptInput{PetID: "p-1", UserID: "u-2", Token: "tok-bob"}
			}
			_, err := f.svc.Adopt(context.Background(), in)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrAlreadyAdopted):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)

	h, _ := f.svc.HistoryFor(context.Background(), "p-1")
	assert.Len(t, h, 1)
}

func TestService_HistoryFor_PetNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.svc.HistoryFor(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPetNotFound)
}
