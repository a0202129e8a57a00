package clients

import (
	"context"

	"github.com/DRSN-tech/kasir-api/internal/cfg"
	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

type RedisClient struct {
	Client *r.Client
}

// NewRedisClient создаёт клиента Redis. Повторы отключены: проверка здоровья
// должна видеть первую же ошибку.
func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	client := r.NewClient(&r.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   -1,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	return &RedisClient{
		Client: client,
	}
}

// Ping проверяет соединение с Redis. Текст ошибки попадает в ответ /health.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap("redis ping", err)
	}

	return nil
}

// Close закрывает пул соединений клиента.
func (r *RedisClient) Close(_ context.Context) error {
	if err := r.Client.Close(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
