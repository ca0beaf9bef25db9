// Package ratelimit ограничивает частоту запросов по ключу клиента
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter решает, можно ли пропустить очередной запрос с ключом key
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter фиксированное окно в Redis, общее для всех инстансов сервиса
type RedisLimiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	prefix string
}

// NewRedisLimiter создает лимитер: не больше limit запросов за window на ключ
func NewRedisLimiter(rdb redis.Scripter, limit int, window time.Duration, prefix string) *RedisLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &RedisLimiter{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{l.prefix + ":" + key}, l.window.Milliseconds()).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit: run script: %w", err)
	}

	var count int64
	switch v := res.(type) {
	case int64:
		count = v
	case string:
		count, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return false, fmt.Errorf("ratelimit: parse counter: %w", err)
		}
	default:
		return false, fmt.Errorf("ratelimit: unexpected script result type %T", res)
	}

	return count <= int64(l.limit), nil
}

// LocalLimiter token bucket в памяти процесса, используется без Redis
type LocalLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	visitors map[string]*rate.Limiter
}

// NewLocalLimiter создает лимитер со средней скоростью limit/window и всплеском limit
func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LocalLimiter{
		limit:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		visitors: make(map[string]*rate.Limiter),
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	lim, ok := l.visitors[key]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.visitors[key] = lim
	}
	l.mu.Unlock()

	return lim.Allow(), nil
}
