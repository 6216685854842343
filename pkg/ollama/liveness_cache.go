package ollama

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const livenessValue = "live"

// CachedClient remembers a positive liveness check in Redis for at most TTL.
// Negative results are never stored and an empty generation drops the stored result.
type CachedClient struct {
	*Client

	TTL   time.Duration
	cache *cache.Cache[string]
}

func NewCachedClient(client *Client, redisClient *redis.Client, ttl time.Duration) *CachedClient {
	redisStore := redisstore.NewRedis(redisClient, store.WithExpiration(ttl))

	return &CachedClient{
		Client: client,
		TTL:    ttl,
		cache:  cache.New[string](redisStore),
	}
}

func (c *CachedClient) cacheKey() string {
	return fmt.Sprintf("ollama/liveness/%s/%s", c.Host, c.Model)
}

func (c *CachedClient) IsLive(ctx context.Context) bool {
	value, err := c.cache.Get(ctx, c.cacheKey())
	if err == nil && value == livenessValue {
		return true
	}

	live := c.Client.IsLive(ctx)

	if live {
		if err := c.cache.Set(ctx, c.cacheKey(), livenessValue, store.WithExpiration(c.TTL)); err != nil {
			log.Error().Err(err).Msg("Failed to store Ollama liveness")
		}
	}

	return live
}

func (c *CachedClient) Generate(ctx context.Context, prompt string) string {
	text := c.Client.Generate(ctx, prompt)

	if text == "" {
		c.Invalidate(ctx)
	}

	return text
}

func (c *CachedClient) Invalidate(ctx context.Context) {
	if err := c.cache.Delete(ctx, c.cacheKey()); err != nil {
		log.Debug().Err(err).Msg("Failed to drop Ollama liveness")
	}
}
