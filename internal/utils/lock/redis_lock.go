// Package lock provides a redis-backed mutex used to serialize operations
// on a single transaction across processes.
package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DistributedLock is a best-effort cross-process mutex.
type DistributedLock interface {
	// Acquire tries to take the lock for ttl; returns false when held
	// elsewhere.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release frees the lock if still owned by this holder.
	Release(ctx context.Context, key string) error
}

// releaseScript deletes the key only when the stored owner token matches,
// so an expired lock re-acquired by another holder is never released here.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLock implements DistributedLock with SETNX and an owner token.
type RedisLock struct {
	client *redis.Client
	owner  string
}

func NewRedisLock(client *redis.Client) *RedisLock {
	return &RedisLock{
		client: client,
		owner:  uuid.NewString(),
	}
}

func (l *RedisLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, "lock:"+key, l.owner, ttl).Result()
}

func (l *RedisLock) Release(ctx context.Context, key string) error {
	return releaseScript.Run(ctx, l.client, []string{"lock:" + key}, l.owner).Err()
}
