package usecase

import (
	"context"

	"github.com/DRSN-tech/kasir-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

type namedCheck struct {
	name  string
	check CheckFunc
}

// HealthUseCase собирает результаты именованных проверок.
type HealthUseCase struct {
	checks []namedCheck
}

func NewHealthUC() *HealthUseCase {
	return &HealthUseCase{}
}

// Register добавляет проверку. Вызывается только при сборке приложения.
func (h *HealthUseCase) Register(name string, check CheckFunc) *HealthUseCase {
	h.checks = append(h.checks, namedCheck{name: name, check: check})
	return h
}

// GetHealth запускает все проверки параллельно и агрегирует статус.
func (h *HealthUseCase) GetHealth(ctx context.Context) *domain.HealthReport {
	results := make([]domain.CheckResult, len(h.checks))

	var g errgroup.Group
	for i, c := range h.checks {
		g.Go(func() error {
			results[i] = c.check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	checks := make(map[string]domain.CheckResult, len(h.checks))
	for i, c := range h.checks {
		checks[c.name] = results[i]
	}

	return domain.NewHealthReport(checks)
}
