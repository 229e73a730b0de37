package redisusers

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-adoption/internal/domain/adoptions"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLookup struct {
	calls int
	users map[string]adoptions.UserRef
	err   error
}

func (f *countingLookup) LookupUser(ctx context.Context, id string) (adoptions.UserRef, error) {
	f.calls++
	if f.err != nil {
		return adoptions.UserRef{}, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return adoptions.UserRef{}, adoptions.ErrUserNotFound
	}
	return u, nil
}

func setup(t *testing.T) (*miniredis.Miniredis, *countingLookup, *CachedLookup) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	next := &countingLookup{users: map[string]adoptions.UserRef{
		"u-1": {ID: "u-1", Username: "alice"},
	}}
	return mr, next, New(next, rdb, time.Minute, nil)
}

func TestCachedLookup_HitAfterMiss(t *testing.T) {
	mr, next, c := setup(t)
	ctx := context.Background()

	u, err := c.LookupUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	u, err = c.LookupUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, 1, next.calls)

	assert.True(t, mr.Exists(KeyPrefix+"u-1"))
	assert.Equal(t, time.Minute, mr.TTL(KeyPrefix+"u-1"))

	mr.FastForward(2 * time.Minute)
	_, err = c.LookupUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedLookup_NegativeResultsAreNotCached(t *testing.T) {
	mr, next, c := setup(t)
	ctx := context.Background()

	_, err := c.LookupUser(ctx, "ghost")
	assert.ErrorIs(t, err, adoptions.ErrUserNotFound)
	assert.False(t, mr.Exists(KeyPrefix+"ghost"))

	next.err = errors.Join(adoptions.ErrUpstreamUnavailable, context.DeadlineExceeded)
	_, err = c.LookupUser(ctx, "u-2")
	assert.ErrorIs(t, err, adoptions.ErrUpstreamUnavailable)
	assert.False(t, mr.Exists(KeyPrefix+"u-2"))
}

func TestCachedLookup_RedisDownFallsThrough(t *testing.T) {
	mr, next, c := setup(t)
	mr.Close()

	u, err := c.LookupUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, 1, next.calls)
}

func TestCachedLookup_CorruptEntryIsReplaced(t *testing.T) {
	mr, next, c := setup(t)
	require.NoError(t, mr.Set(KeyPrefix+"u-1", "{not json"))

	u, err := c.LookupUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, 1, next.calls)

	raw, err := mr.Get(KeyPrefix + "u-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u-1","username":"alice"}`, raw)
}
