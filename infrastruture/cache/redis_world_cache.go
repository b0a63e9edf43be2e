package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix     = "maze_world"
	worldKeyFmt       = "%s:world:%s"
	buildLockExpiry   = 10 * time.Second
	buildLockAttempts = 64
)

// RedisWorldCache keeps rendered world documents in Redis with a TTL.
type RedisWorldCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
	logger general_i.Logger
}

// NewRedisWorldCache initializes a RedisWorldCache with the provided Redis client and TTL.
func NewRedisWorldCache(client *redis.Client, ttlSeconds int, logger general_i.Logger) (*RedisWorldCache, error) {
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("world cache ttl must be positive, got %d", ttlSeconds)
	}

	cache := &RedisWorldCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		prefix: defaultPrefix,
		logger: logger,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

func (c *RedisWorldCache) key(id uuid.UUID) string {
	return fmt.Sprintf(worldKeyFmt, c.prefix, id)
}

// get returns the cached document and whether it was there.
func (c *RedisWorldCache) get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// GetOrBuild returns the cached document or builds, caches and returns it.
// A redsync mutex per key keeps concurrent misses from building twice.
func (c *RedisWorldCache) GetOrBuild(ctx context.Context, id uuid.UUID, build func() ([]byte, error)) ([]byte, error) {
	key := c.key(id)
	if data, ok, err := c.get(ctx, key); err != nil || ok {
		return data, err
	}

	mutex := c.locker.NewMutex(key+":build_lock",
		redsync.WithExpiry(buildLockExpiry),
		redsync.WithTries(buildLockAttempts),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	// Another holder of the lock may have filled the key meanwhile.
	if data, ok, err := c.get(ctx, key); err != nil || ok {
		return data, err
	}

	data, err := build()
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Error(fmt.Sprintf("caching world %s: %s", id, err))
	} else {
		c.logger.Info(fmt.Sprintf("cached rebuilt world %s", id))
	}
	return data, nil
}

// Put stores a document under id for the cache TTL.
func (c *RedisWorldCache) Put(ctx context.Context, id uuid.UUID, world []byte) error {
	return c.client.Set(ctx, c.key(id), world, c.ttl).Err()
}

// Invalidate drops the document stored under id.
func (c *RedisWorldCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
