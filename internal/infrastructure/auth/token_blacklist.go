package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist tracks revoked tokens. Individual tokens are revoked by
// their jti; all of a user's tokens can be invalidated at once by recording
// an invalidation timestamp that issued-at times are compared against.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	RevokeAllForUser(ctx context.Context, userID string, ttl time.Duration) error
	IsUserTokenInvalidated(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}

// RedisTokenBlacklist implements TokenBlacklist on redis with TTL-bound keys.
type RedisTokenBlacklist struct {
	client *redis.Client
	prefix string
}

func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client: client, prefix: "ledgerline:blacklist"}
}

func (b *RedisTokenBlacklist) jtiKey(jti string) string {
	return fmt.Sprintf("%s:jti:%s", b.prefix, jti)
}

func (b *RedisTokenBlacklist) userKey(userID string) string {
	return fmt.Sprintf("%s:user:%s", b.prefix, userID)
}

func (b *RedisTokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, b.jtiKey(jti), "1", ttl).Err()
}

func (b *RedisTokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, b.jtiKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *RedisTokenBlacklist) RevokeAllForUser(ctx context.Context, userID string, ttl time.Duration) error {
	now := strconv.FormatInt(time.Now().Unix(), 10)
	return b.client.Set(ctx, b.userKey(userID), now, ttl).Err()
}

func (b *RedisTokenBlacklist) IsUserTokenInvalidated(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	val, err := b.client.Get(ctx, b.userKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	invalidatedAt, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse invalidation timestamp: %w", err)
	}
	return issuedAt.Unix() <= invalidatedAt, nil
}

// NoopTokenBlacklist is used when redis is disabled; nothing is ever revoked.
type NoopTokenBlacklist struct{}

func (NoopTokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return nil
}

func (NoopTokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, nil
}

func (NoopTokenBlacklist) RevokeAllForUser(ctx context.Context, userID string, ttl time.Duration) error {
	return nil
}

func (NoopTokenBlacklist) IsUserTokenInvalidated(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	return false, nil
}
