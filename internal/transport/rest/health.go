package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// writeQueue reports the word list writes not yet stored.
type writeQueue interface {
	Pending() int
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	db      dbPinger
	writes  writeQueue
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. writes may be nil.
func NewHealthHandler(db dbPinger, writes writeQueue, version string) *HealthHandler {
	return &HealthHandler{db: db, writes: writes, version: version, now: time.Now}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus describes one dependency in a /health report.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Pending *int   `json:"pending,omitempty"`
}

const (
	statusOK   = "ok"
	statusDown = "down"
)

// Live answers as long as the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Ready fails while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	h.respond(w, HealthResponse{Status: db.Status})
}

// Health reports every component with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     statusOK,
		Version:    h.version,
		Components: map[string]CompStatus{"database": h.pingDB(r.Context())},
	}
	if h.writes != nil {
		pending := h.writes.Pending()
		resp.Components["persister"] = CompStatus{Status: statusOK, Pending: &pending}
	}
	for _, c := range resp.Components {
		if c.Status != statusOK {
			resp.Status = statusDown
		}
	}
	h.respond(w, resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func (h *HealthHandler) respond(w http.ResponseWriter, resp HealthResponse) {
	resp.Timestamp = h.now()
	code := http.StatusOK
	if resp.Status != statusOK {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
