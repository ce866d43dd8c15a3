package models

import "time"

// ServerStatsResponse contains runtime statistics for the daemon.
type ServerStatsResponse struct {
	Uptime        string    `json:"uptime"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	StartTime     time.Time `json:"start_time"`
	GoRoutines    int       `json:"goroutines"`
	MemoryAllocMB float64   `json:"memory_alloc_mb"`
	NumCPU        int       `json:"num_cpu"`

	System *SystemStatsResponse `json:"system,omitempty"`
}

// SystemStatsResponse contains host-level statistics gathered via gopsutil.
// It is omitted when the probes fail (e.g. in restricted containers).
type SystemStatsResponse struct {
	HostUptimeSeconds int64   `json:"host_uptime_seconds"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryUsedMB      float64 `json:"memory_used_mb"`
	MemoryTotalMB     float64 `json:"memory_total_mb"`
	MemoryUsedPct     float64 `json:"memory_used_pct"`
}
