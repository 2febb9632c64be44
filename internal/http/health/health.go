package health

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

type Handler struct {
	ready atomic.Bool
	// Active reports currently registered executions for readiness output.
	Active func() int
}

// New returns a health handler instance.
func New(active func() int) *Handler {
	return &Handler{Active: active}
}

// SetReady marks the handler as ready.
func (h *Handler) SetReady() {
	h.ready.Store(true)
}

// SetNotReady marks the handler as not ready.
func (h *Handler) SetNotReady() {
	h.ready.Store(false)
}

// Healthz handles liveness probes.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Readyz handles readiness probes.
func (h *Handler) Readyz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	active := 0
	if h.Active != nil {
		active = h.Active()
	}
	if h.ready.Load() {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, `{"status":"ready","active_executions":%d}`, active)
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = fmt.Fprintf(w, `{"status":"not_ready","active_executions":%d}`, active)
}
