package handlers

import (
	"net/http"
	"runtime"
	"time"

	"fs-indexer/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status         string `json:"status"`
	Ready          bool   `json:"ready"`
	Version        string `json:"version"`
	Uptime         string `json:"uptime"`
	Indexing       bool   `json:"indexing"`
	ActiveRuns     int64  `json:"activeRuns"`
	TotalRuns      int64  `json:"totalRuns"`
	LastIndexed    string `json:"lastIndexed,omitempty"`
	LastRoot       string `json:"lastRoot,omitempty"`
	LastError      string `json:"lastError,omitempty"`
	MaxConcurrency int    `json:"maxConcurrency"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck returns the health status of the service. The last traversal
// failing marks the service degraded, which still answers 200.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	healthStatus := h.indexer.GetHealthStatus()

	response := HealthResponse{
		Status:         statusHealthy,
		Ready:          healthStatus.Ready,
		Version:        startup.Version,
		Uptime:         healthStatus.Uptime,
		Indexing:       healthStatus.Indexing,
		ActiveRuns:     healthStatus.ActiveRuns,
		TotalRuns:      healthStatus.TotalRuns,
		LastRoot:       healthStatus.LastRoot,
		LastError:      healthStatus.LastError,
		MaxConcurrency: healthStatus.MaxConcurrency,
		GoVersion:      runtime.Version(),
		NumCPU:         runtime.NumCPU(),
		NumGoroutine:   runtime.NumGoroutine(),
	}

	if !healthStatus.LastIndexed.IsZero() {
		response.LastIndexed = healthStatus.LastIndexed.Format(time.RFC3339)
	}
	if healthStatus.LastError != "" {
		response.Status = statusDegraded
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		writeJSON(w, map[string]string{
			"status": "alive",
		})
	}
}
