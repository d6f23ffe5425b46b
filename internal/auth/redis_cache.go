package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const tokenCachePrefix = "auth_token:"

// TokenCache short-circuits JWT verification for tokens seen recently.
// A nil cache disables caching entirely.
type TokenCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewTokenCache(client *redis.Client, ttl time.Duration) *TokenCache {
	return &TokenCache{Client: client, TTL: ttl}
}

// InitializeTokenCache connects to Redis and verifies the connection is
// usable before the middleware starts relying on it.
func InitializeTokenCache(redisAddr string, ttl time.Duration) (*TokenCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		PoolSize: 10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return NewTokenCache(client, ttl), nil
}

func cacheKey(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return tokenCachePrefix + hex.EncodeToString(sum[:])
}

func (c *TokenCache) Get(ctx context.Context, rawToken string) (*Claims, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	payload, err := c.Client.Get(ctx, cacheKey(rawToken)).Bytes()
	if err != nil {
		return nil, false
	}
	claims := &Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, false
	}
	// Expiry still applies even when the cache entry outlives the token.
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, false
	}
	return claims, true
}

func (c *TokenCache) Set(ctx context.Context, rawToken string, claims *Claims) {
	if c == nil || c.Client == nil {
		return
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return
	}
	ttl := c.TTL
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl <= 0 {
		return
	}
	c.Client.Set(ctx, cacheKey(rawToken), payload, ttl)
}
