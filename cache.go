package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

const (
	redisMaxIdle     = 10
	redisIdleTimeout = 240 * time.Second
	redisDatabase    = 0
)

// cacheStore is the get/set-with-expiry contract the orchestrator consumes.
// get returns errCacheMiss when the key is absent.
type cacheStore interface {
	get(ctx context.Context, key string) (string, error)
	setex(ctx context.Context, key string, value string, ttl time.Duration) error
}

func newRedisPool(cfg *Config) *redis.Pool {
	addr := fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort)
	return &redis.Pool{
		MaxIdle:     redisMaxIdle,
		IdleTimeout: redisIdleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr, redis.DialDatabase(redisDatabase))
		},
	}
}

// redisStore backs cacheStore with a shared redigo pool, safe for concurrent
// use across requests.
type redisStore struct {
	pool *redis.Pool
}

func (s *redisStore) get(ctx context.Context, key string) (string, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	value, err := redis.String(redis.DoContext(conn, ctx, "GET", key))
	if err == redis.ErrNil {
		return "", errCacheMiss
	}
	return value, err
}

func (s *redisStore) setex(ctx context.Context, key string, value string, ttl time.Duration) error {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = redis.DoContext(conn, ctx, "SET", key, value, "EX", int64(ttl.Seconds()))
	return err
}
