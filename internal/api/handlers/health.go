package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/jroosing/zonejson/internal/api/models"
	"github.com/jroosing/zonejson/internal/helpers"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, goroutines, and host load
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: helpers.BytesToMB(m.Alloc),
		NumCPU:        runtime.NumCPU(),
		System:        systemStats(),
	}

	c.JSON(http.StatusOK, resp)
}

// systemStats gathers host-level numbers. Any probe failure drops the whole
// section rather than reporting partial garbage.
func systemStats() *models.SystemStatsResponse {
	up, err := host.Uptime()
	if err != nil {
		return nil
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil
	}
	out := &models.SystemStatsResponse{
		HostUptimeSeconds: helpers.ClampUint64ToInt64(up),
		MemoryUsedMB:      helpers.BytesToMB(vm.Used),
		MemoryTotalMB:     helpers.BytesToMB(vm.Total),
		MemoryUsedPct:     vm.UsedPercent,
	}
	// instantaneous (non-blocking) CPU sample; best effort
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		out.CPUPercent = pcts[0]
	}
	return out
}
