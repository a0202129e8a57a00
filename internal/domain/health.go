package domain

import (
	"math"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckResult — результат одной именованной проверки.
type CheckResult struct {
	Status    string
	LatencyMs *float64
	Error     *string
}

// HealthReport — агрегированное состояние сервиса.
type HealthReport struct {
	Status string
	Checks map[string]CheckResult
}

func NewHealthyCheck(latency time.Duration) CheckResult {
	ms := LatencyMs(latency)
	return CheckResult{Status: StatusHealthy, LatencyMs: &ms}
}

func NewUnhealthyCheck(err error) CheckResult {
	msg := err.Error()
	return CheckResult{Status: StatusUnhealthy, Error: &msg}
}

// LatencyMs переводит длительность в миллисекунды с округлением до 2 знаков.
func LatencyMs(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}

// NewHealthReport агрегирует проверки: healthy только если все проверки healthy.
func NewHealthReport(checks map[string]CheckResult) *HealthReport {
	status := StatusHealthy
	for _, c := range checks {
		if c.Status != StatusHealthy {
			status = StatusUnhealthy
			break
		}
	}

	return &HealthReport{Status: status, Checks: checks}
}

func (h *HealthReport) Healthy() bool {
	return h.Status == StatusHealthy
}
