package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BeautyProBR/beautypro-api/internal/config"
)

// NewRedisClient conecta no Redis usado pelo rate limit da superfície
// pública. Devolve nil quando não há Redis configurado ou alcançável:
// quem consome degrada para passthrough, nunca derruba a API.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}
