package redis

import (
	"context"
	"time"

	"github.com/DRSN-tech/kasir-api/internal/domain"
	"github.com/DRSN-tech/kasir-api/pkg/clients"
)

// HealthRepo проверяет доступность Redis.
type HealthRepo struct {
	client *clients.RedisClient
}

func NewHealthRepo(client *clients.RedisClient) *HealthRepo {
	return &HealthRepo{client: client}
}

// PingRedis отправляет PING и измеряет задержку.
func (h *HealthRepo) PingRedis(ctx context.Context) domain.CheckResult {
	start := time.Now()
	if err := h.client.Ping(ctx); err != nil {
		return domain.NewUnhealthyCheck(err)
	}

	return domain.NewHealthyCheck(time.Since(start))
}
