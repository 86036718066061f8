package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const cacheKeyPrefix = "gosnews:translation:"

// Store is the subset of the Redis client used by Cached.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Cached memoizes another Translator in Redis. Redis failures are logged
// and never fail a translation.
type Cached struct {
	next   Translator
	store  Store
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewCached(next Translator, store Store, ttl time.Duration, logger *zerolog.Logger) *Cached {
	return &Cached{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *Cached) Translate(ctx context.Context, text, source, target string) (string, error) {
	key := cacheKey(text, source, target)

	cached, err := c.store.Get(ctx, key).Result()
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		c.logger.Warn().Err(err).Msg("translation cache read failed")
	}

	out, err := c.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	if err := c.store.Set(ctx, key, out, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("translation cache write failed")
	}

	return out, nil
}

func cacheKey(text, source, target string) string {
	sum := sha256.Sum256([]byte(source + "|" + target + "|" + text))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
