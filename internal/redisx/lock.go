package redisx

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// AuthorizeLock is the serialization point for concurrent authorize calls
// on the same upstream id. SETNX with a TTL; no fencing, callers treat it
// as best effort.
type AuthorizeLock struct {
	Redis *redis.Client
}

func (l *AuthorizeLock) TryLock(ctx context.Context, upstreamID string) (bool, error) {
	key := fmt.Sprintf(KeyAuthorizeLock, upstreamID)
	return l.Redis.SetNX(ctx, key, "1", TTLAuthorizeLock).Result()
}

func (l *AuthorizeLock) Unlock(ctx context.Context, upstreamID string) {
	key := fmt.Sprintf(KeyAuthorizeLock, upstreamID)
	_ = l.Redis.Del(ctx, key).Err()
}
