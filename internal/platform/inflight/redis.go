package inflight

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

// releaseScript deletes the key only while it still carries our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisGuard struct {
	log    *logger.Logger
	rdb    goredis.UniversalClient
	prefix string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisGuard connects to Redis and verifies it with a PING.
func NewRedisGuard(log *logger.Logger, cfg RedisConfig) (Guard, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisGuardWithClient(log, rdb, cfg.Prefix), nil
}

func NewRedisGuardWithClient(log *logger.Logger, rdb goredis.UniversalClient, prefix string) Guard {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "studytrack:inflight:"
	}
	return &redisGuard{log: log.With("service", "RedisInflightGuard"), rdb: rdb, prefix: prefix}
}

func (g *redisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	full := g.prefix + key
	token := uuid.NewString()
	ok, err := g.rdb.SetNX(ctx, full, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("inflight acquire: %w", err)
	}
	if !ok {
		return nil, ErrBusy
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			// The request context may already be done; release on a short fresh one.
			rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(rctx, g.rdb, []string{full}, token).Err(); err != nil {
				g.log.Warn("inflight release failed", "key", full, "error", err)
			}
		})
	}, nil
}

// Close shuts the underlying Redis client.
func (g *redisGuard) Close() error { return g.rdb.Close() }
