package pgdb

import (
	"context"
	"time"

	"github.com/DRSN-tech/kasir-api/internal/domain"
)

// HealthRepo проверяет доступность PostgreSQL.
type HealthRepo struct {
	db DB
}

func NewHealthRepo(db DB) *HealthRepo {
	return &HealthRepo{db: db}
}

// PingDatabase выполняет SELECT 1 и измеряет задержку. Ошибка не возвращается,
// а попадает в результат проверки.
func (h *HealthRepo) PingDatabase(ctx context.Context) domain.CheckResult {
	start := time.Now()
	if _, err := h.db.Exec(ctx, "SELECT 1"); err != nil {
		return domain.NewUnhealthyCheck(err)
	}

	return domain.NewHealthyCheck(time.Since(start))
}
