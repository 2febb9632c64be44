// Package httpapi exposes the execution engine over plain HTTP: the
// platform-filtered catalog, a chunked line stream per execution and a
// structured stop endpoint.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/randomname124290358349/myTools/internal/catalog"
	"github.com/randomname124290358349/myTools/internal/platform"
	"github.com/randomname124290358349/myTools/internal/security"
	"github.com/randomname124290358349/myTools/internal/supervisor"
	"github.com/randomname124290358349/myTools/internal/templates"
)

// ExecutionIDHeader carries the execution id out of band next to the
// stream body.
const ExecutionIDHeader = "X-Execution-ID"

// Handler serves the engine's HTTP operations.
type Handler struct {
	// Catalog is the full, unfiltered catalog.
	Catalog *catalog.Catalog
	// Family is the active platform family.
	Family string
	// Supervisor owns the execution registry.
	Supervisor *supervisor.Supervisor
	// Messages renders localized user-facing lines.
	Messages templates.Renderer
	// Logger is used for structured logging.
	Logger *slog.Logger
}

// Register wires the API routes into mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/commands", h.listCommands)
	mux.HandleFunc("GET /api/platform", h.platformInfo)
	mux.HandleFunc("POST /execute/{tool}", h.execute)
	mux.HandleFunc("POST /stop/{id}", h.stop)
}

// listCommands returns the platform-filtered catalog tools as JSON.
func (h *Handler) listCommands(w http.ResponseWriter, _ *http.Request) {
	filtered := platform.Filter(h.Catalog, h.Family)
	tools := filtered.Tools
	if tools == nil {
		tools = []catalog.CommandTemplate{}
	}
	writeJSON(w, h.Logger, tools)
}

// platformInfo describes the running platform.
func (h *Handler) platformInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.Logger, platform.Describe())
}

// execute starts a tool run and streams its output as chunked plain
// text. The execution id travels in the response header; validation and
// spawn failures arrive as a single explanatory line in the body.
func (h *Handler) execute(w http.ResponseWriter, r *http.Request) {
	toolID := r.PathValue("tool")

	params, err := decodeParams(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	tool, found := platform.Find(h.Catalog, toolID)
	if !found {
		writeLine(w, h.message("error.unknown_tool", "Command not found"))
		return
	}

	filtered, supported := platform.FilterTool(tool, h.Family)
	if !supported {
		writeLine(w, h.message("error.unsupported", "Command not supported on this system"))
		return
	}

	id := uuid.NewString()
	w.Header().Set(ExecutionIDHeader, id)

	if h.Logger != nil {
		h.Logger.Info("execute request", "tool", toolID, "execution_id", id, "params", security.RedactParams(params))
	}

	flusher, _ := w.(http.Flusher)
	emit := func(line string) bool {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return false
		}
		if flusher != nil {
			flusher.Flush()
		}
		return r.Context().Err() == nil
	}

	streamer := supervisor.Streamer{Supervisor: h.Supervisor, Messages: h.Messages}
	streamer.Run(r.Context(), filtered, filtered.Variant(h.Family), params, id, emit)
}

// stop cancels a running execution and reports the structured outcome.
func (h *Handler) stop(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	result := h.Supervisor.Cancel(r.Context(), id)
	writeJSON(w, h.Logger, result)
}

func (h *Handler) message(key, fallback string) string {
	if h.Messages == nil {
		return fallback
	}
	rendered, err := h.Messages.Render(key, nil)
	if err != nil {
		return fallback
	}
	return rendered
}

func decodeParams(body io.Reader) (map[string]any, error) {
	params := map[string]any{}
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(&params); err != nil {
		if errors.Is(err, io.EOF) {
			return params, nil
		}
		return nil, err
	}
	return params, nil
}

func writeLine(w http.ResponseWriter, line string) {
	_, _ = io.WriteString(w, line+"\n")
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil && logger != nil {
		logger.Error("write response failed", "error", err)
	}
}
