package http

import (
	"net/http"

	"github.com/DRSN-tech/kasir-api/internal/usecase"
	"github.com/DRSN-tech/kasir-api/pkg/logger"
)

type HealthHandler struct {
	healthUsecase usecase.HealthUC
	logger        logger.Logger
}

func NewHealthHandler(healthUsecase usecase.HealthUC, logger logger.Logger) *HealthHandler {
	return &HealthHandler{healthUsecase: healthUsecase, logger: logger}
}

// getHealth
//
//	@Summary		Состояние сервиса
//	@Description	200, если все проверки успешны, иначе 503. Тело одинаковое в обоих случаях
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health [get]
func (h *HealthHandler) getHealth(w http.ResponseWriter, r *http.Request) {
	report := h.healthUsecase.GetHealth(r.Context())

	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
		for name, check := range report.Checks {
			if check.Error != nil {
				h.logger.Warnf("health check %q is %s: %s", name, check.Status, *check.Error)
			}
		}
	}

	WriteSuccess(w, status, newHealthResponse(report))
}
