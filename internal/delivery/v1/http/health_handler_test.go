package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/DRSN-tech/kasir-api/internal/domain"
)

func (s *RouterSuite) TestHealthHealthy() {
	s.health.report = domain.NewHealthReport(map[string]domain.CheckResult{
		"database": domain.NewHealthyCheck(1270 * time.Microsecond),
	})

	rec := s.do(http.MethodGet, "/api/v1/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{
		"status":"healthy",
		"checks":{"database":{"status":"healthy","latency_ms":1.27,"error":null}}
	}`, rec.Body.String())
}

func (s *RouterSuite) TestHealthUnhealthyIs503WithBody() {
	s.health.report = domain.NewHealthReport(map[string]domain.CheckResult{
		"database": domain.NewUnhealthyCheck(errors.New("connection refused")),
	})

	rec := s.do(http.MethodGet, "/api/v1/health", "")

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.JSONEq(`{
		"status":"unhealthy",
		"checks":{"database":{"status":"unhealthy","latency_ms":null,"error":"connection refused"}}
	}`, rec.Body.String())
}
