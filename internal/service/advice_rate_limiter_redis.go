package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ventana fija: el primer INCR de la ventana fija el TTL.
const redisAdviceAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

const adviceRateLimitPrefix = "advice:rl:"

// AdviceRateLimiter limita las llamadas al LLM externo por cliente.
type AdviceRateLimiter interface {
	Allow(ctx context.Context, key string) bool
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisAdviceRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

// NewRedisAdviceRateLimiter devuelve nil si no hay cliente Redis; el servicio trata nil como "sin limite".
func NewRedisAdviceRateLimiter(client *redis.Client, window time.Duration, max int) AdviceRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = 10 * time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisAdviceRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: adviceRateLimitPrefix,
	}
}

// Allow falla abierto ante errores de Redis. Una clave vacia se agrupa como "anonymous".
func (l *redisAdviceRateLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		normalizedKey = "anonymous"
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisAdviceAllowScript, []string{l.prefix + normalizedKey}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}
