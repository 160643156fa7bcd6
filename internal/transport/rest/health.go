package rest

import (
	"context"
	"net/http"
	"time"
)

const checkTimeout = 3 * time.Second

// pinger is anything whose availability can be probed, such as *pgxpool.Pool.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	deps    map[string]pinger
	version string
}

// NewHealthHandler creates a HealthHandler that probes the database.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		deps:    map[string]pinger{"database": db},
		version: version,
	}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process is up.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 200 when every dependency responds, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.probe(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health is Ready plus per-dependency latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.probe(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	overall := "ok"
	components := make(map[string]CompStatus, len(h.deps))
	for name, dep := range h.deps {
		start := time.Now()
		if err := dep.Ping(ctx); err != nil {
			components[name] = CompStatus{Status: "down"}
			overall = "down"
			continue
		}
		components[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return overall, components
}

func httpStatus(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
