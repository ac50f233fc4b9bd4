package health

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"fuel-console/internal/cache"
)

// Pinger reports whether the REST backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	backend Pinger
	redis   func() (enabled, healthy bool)
}

type HealthStatus struct {
	Status  string          `json:"status"`
	Backend ComponentHealth `json:"backend"`
	Redis   ComponentHealth `json:"redis"`
	System  *SystemStats    `json:"system,omitempty"`
}

type ComponentHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms,omitempty"`
	Error        string `json:"error,omitempty"`
}

type SystemStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsed    uint64  `json:"memory_used"`
	MemoryTotal   uint64  `json:"memory_total"`
	DiskPercent   float64 `json:"disk_percent"`
	DiskUsed      uint64  `json:"disk_used"`
	DiskTotal     uint64  `json:"disk_total"`
}

func NewHealthChecker(backend Pinger) *HealthChecker {
	return &HealthChecker{
		backend: backend,
		redis: func() (bool, bool) {
			if !cache.Enabled() {
				return false, false
			}
			return true, cache.IsHealthy()
		},
	}
}

// CheckBasic checks the backend and Redis. Redis is optional: when it is
// not configured it reports "disabled" and does not fail the check.
func (h *HealthChecker) CheckBasic() HealthStatus {
	backend := h.checkBackend()
	redis := h.checkRedis()

	status := "healthy"
	if backend.Status != "healthy" || redis.Status == "unhealthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:  status,
		Backend: backend,
		Redis:   redis,
	}
}

// CheckDetailed is CheckBasic plus host resource usage.
func (h *HealthChecker) CheckDetailed() HealthStatus {
	status := h.CheckBasic()
	status.System = systemStats()
	return status
}

func (h *HealthChecker) checkBackend() ComponentHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.backend.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return ComponentHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
			Error:        err.Error(),
		}
	}

	return ComponentHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}

func (h *HealthChecker) checkRedis() ComponentHealth {
	enabled, healthy := h.redis()
	switch {
	case !enabled:
		return ComponentHealth{Status: "disabled"}
	case !healthy:
		return ComponentHealth{Status: "unhealthy"}
	}
	return ComponentHealth{Status: "healthy"}
}

func systemStats() *SystemStats {
	stats := &SystemStats{}
	if pct, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(pct) > 0 {
		stats.CPUPercent = pct[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsed = vm.Used
		stats.MemoryTotal = vm.Total
	}
	if du, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = du.UsedPercent
		stats.DiskUsed = du.Used
		stats.DiskTotal = du.Total
	}
	return stats
}
