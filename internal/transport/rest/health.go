package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type dependency struct {
	name string
	p    pinger
	// required dependencies take the service down; the rest only degrade it.
	required bool
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	deps    []dependency
	version string
	started time.Time
}

// NewHealthHandler reports on the database and, when realtime delivery is
// enabled, the redis event bus. Pass a nil events pinger to leave it out.
func NewHealthHandler(db, events pinger, version string) *HealthHandler {
	deps := []dependency{{name: "database", p: db, required: true}}
	if events != nil {
		deps = append(deps, dependency{name: "redis", p: events})
	}
	return &HealthHandler{deps: deps, version: version, started: time.Now()}
}

// HealthResponse is the body of every probe endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the probe result of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 until every required dependency responds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.check(r.Context(), true)
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health probes all dependencies concurrently and reports each of them.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.check(r.Context(), false)
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Uptime:     time.Since(h.started).Truncate(time.Second).String(),
		Components: components,
		Timestamp:  time.Now(),
	})
}

// check returns "ok", "degraded" or "down" plus per-dependency results.
func (h *HealthHandler) check(ctx context.Context, requiredOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(h.deps))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, d := range h.deps {
		if requiredOnly && !d.required {
			continue
		}
		g.Go(func() error {
			res := probe(gctx, d.p)
			mu.Lock()
			components[d.name] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	status := "ok"
	for _, d := range h.deps {
		res, ok := components[d.name]
		if !ok || res.Status == "ok" {
			continue
		}
		if d.required {
			return "down", components
		}
		status = "degraded"
	}
	return status, components
}

func probe(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Error: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
