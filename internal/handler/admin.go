package handler

import (
	"net/http"
	"runtime"
	"time"

	"recipehub-admin-api/internal/service"
	"recipehub-admin-api/pkg/response"
)

// AdminHandler handles the console's operational stats endpoint.
type AdminHandler struct {
	requestService *service.RequestService
	catalogSource  string
	startTime      time.Time
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(requestService *service.RequestService, catalogSource string) *AdminHandler {
	return &AdminHandler{
		requestService: requestService,
		catalogSource:  catalogSource,
		startTime:      time.Now(),
	}
}

// GetStats handles GET /api/v1/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats := make(map[string]interface{})

	// System info
	stats["uptime_seconds"] = int64(time.Since(h.startTime).Seconds())
	stats["uptime_human"] = time.Since(h.startTime).Round(time.Second).String()
	stats["server_time"] = time.Now().Format(time.RFC3339)
	stats["catalog_source"] = h.catalogSource

	// Memory stats
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	stats["memory"] = map[string]interface{}{
		"alloc_mb":      float64(memStats.Alloc) / 1024 / 1024,
		"sys_mb":        float64(memStats.Sys) / 1024 / 1024,
		"heap_alloc_mb": float64(memStats.HeapAlloc) / 1024 / 1024,
		"num_gc":        memStats.NumGC,
		"goroutines":    runtime.NumGoroutine(),
	}

	// Request table stats
	counts, err := h.requestService.CountByState(ctx)
	if err != nil {
		stats["requests"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		total := 0
		byState := make(map[string]int, len(counts))
		for state, n := range counts {
			byState[string(state)] = n
			total += n
		}
		stats["requests"] = map[string]interface{}{
			"total":    total,
			"by_state": byState,
		}
	}

	response.OK(w, stats)
}
