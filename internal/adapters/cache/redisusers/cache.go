package redisusers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

const (
	KeyPrefix  = "pet-adoption:user:"
	DefaultTTL = time.Minute
)

// CachedLookup cachea en Redis solo las respuestas positivas de otro UserLookup.
// Si Redis falla se consulta directo al upstream.
type CachedLookup struct {
	next adoptions.UserLookup
	rdb  redis.UniversalClient
	ttl  time.Duration
	log  logger.Logger
}

func New(next adoptions.UserLookup, rdb redis.UniversalClient, ttl time.Duration, log logger.Logger) *CachedLookup {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CachedLookup{next: next, rdb: rdb, ttl: ttl, log: log}
}

type cachedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (c *CachedLookup) LookupUser(ctx context.Context, userID string) (adoptions.UserRef, error) {
	key := KeyPrefix + userID

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cu cachedUser
		if jerr := json.Unmarshal(raw, &cu); jerr == nil && cu.ID != "" {
			return adoptions.UserRef{ID: cu.ID, Username: cu.Username}, nil
		}
		// entrada corrupta: se pisa abajo
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn("user cache read failed", map[string]any{"key": key, "err": err})
	}

	u, err := c.next.LookupUser(ctx, userID)
	if err != nil {
		return adoptions.UserRef{}, err
	}

	b, _ := json.Marshal(cachedUser{ID: u.ID, Username: u.Username})
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.log.Warn("user cache write failed", map[string]any{"key": key, "err": err})
	}
	return u, nil
}
