package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BeautyProBR/beautypro-api/internal/config"
	"github.com/BeautyProBR/beautypro-api/internal/httperr"
)

// Token bucket por IP guardado no Redis, aplicado só na superfície
// pública de agendamento. Sem Redis a API segue sem limite: abuso é
// preocupação de colaborador externo, o limiter aqui é só a primeira
// barreira.
var bucketScript = redis.NewScript(`
    local key = KEYS[1]
    local now_ms = tonumber(ARGV[1])
    local capacity = tonumber(ARGV[2])
    local refill_tokens = tonumber(ARGV[3])
    local interval_ms = tonumber(ARGV[4])
    local ttl_seconds = tonumber(ARGV[5])

    local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
    local tokens = tonumber(state[1])
    local last_refill = tonumber(state[2])

    if tokens == nil or last_refill == nil then
        tokens = capacity
        last_refill = now_ms
    end

    if interval_ms > 0 and refill_tokens > 0 then
        local elapsed = math.max(0, now_ms - last_refill)
        local intervals = math.floor(elapsed / interval_ms)
        if intervals > 0 then
            tokens = math.min(capacity, tokens + (intervals * refill_tokens))
            last_refill = last_refill + (intervals * interval_ms)
        end
    end

    local allowed = 0
    if tokens > 0 then
        allowed = 1
        tokens = tokens - 1
    end

    redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
    redis.call('EXPIRE', key, ttl_seconds)

    return allowed
`)

func PublicRateLimit(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := "ratelimit:public:" + c.ClientIP()

		args := []interface{}{
			time.Now().UnixMilli(),
			cfg.RateLimitCapacity,
			cfg.RateLimitRefill,
			int64(time.Minute / time.Millisecond),
			int64(10 * time.Minute / time.Second),
		}

		allowed, err := bucketScript.Run(
			c.Request.Context(), rdb, []string{key}, args...,
		).Int64()

		// Redis fora do ar não derruba agendamento público.
		if err != nil {
			c.Next()
			return
		}

		if allowed == 0 {
			httperr.TooManyRequests(c, "rate_limited", "Muitas solicitações. Tente novamente em instantes.")
			c.Abort()
			return
		}

		c.Next()
	}
}
