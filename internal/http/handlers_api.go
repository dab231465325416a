package httpx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/L-P/mme/internal/core"
	"github.com/L-P/mme/internal/service"
)

const healthResponse = `{"status":"ok"}` + "\n"

var errInvalidStart = errors.New("start must be a decimal VROM offset")

// APIHandlers serves the JSON API over a core.Catalog.
type APIHandlers struct {
	Catalog core.Catalog
	Query   *service.QueryService // Optional: enables ?query= on list endpoints
	Logger  *slog.Logger
}

func (h *APIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// parseStart reads the {start} path value as a decimal uint32.
func parseStart(r *http.Request) (uint32, error) {
	raw := r.PathValue("start")
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidStart, raw)
	}
	return uint32(v), nil
}

// fail logs server-side failures and writes the JSON error body.
func (h *APIHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	if status, _ := errorStatus(err); status >= http.StatusInternalServerError {
		h.logger().ErrorContext(r.Context(), "api request failed",
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeAppError(w, err)
}

// list writes the result of fetch, filtered by the optional ?query= expression.
func list[T any](h *APIHandlers, w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]T, error)) {
	items, err := fetch(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if items == nil {
		items = []T{}
	}

	query := r.URL.Query().Get("query")
	if h.Query == nil || query == "" {
		WriteJSON(w, http.StatusOK, items)
		return
	}

	out, err := h.Query.Apply(query, items)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// one writes the item fetched for the {start} path value.
func one[T any](h *APIHandlers, w http.ResponseWriter, r *http.Request, fetch func(context.Context, uint32) (T, error)) {
	start, err := parseStart(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	item, err := fetch(r.Context(), start)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// ROM handles GET /api/rom.
func (h *APIHandlers) ROM(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Catalog.Summary(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}

// Files handles GET /api/files.
func (h *APIHandlers) Files(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, h.Catalog.Files)
}

// FileData handles GET /api/files/{start} with the raw file contents.
func (h *APIHandlers) FileData(w http.ResponseWriter, r *http.Request) {
	start, err := parseStart(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data, err := h.Catalog.FileData(r.Context(), start)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%08X.bin"`, start))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger().DebugContext(r.Context(), "file data write failed", "error", err)
	}
}

// Scenes handles GET /api/scenes.
func (h *APIHandlers) Scenes(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, h.Catalog.Scenes)
}

// Scene handles GET /api/scenes/{start}.
func (h *APIHandlers) Scene(w http.ResponseWriter, r *http.Request) {
	one(h, w, r, h.Catalog.Scene)
}

// Room handles GET /api/rooms/{start}.
func (h *APIHandlers) Room(w http.ResponseWriter, r *http.Request) {
	one(h, w, r, h.Catalog.Room)
}

// Messages handles GET /api/messages.
func (h *APIHandlers) Messages(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, h.Catalog.Messages)
}

// ColorMap handles GET /api/colormap.
func (h *APIHandlers) ColorMap(w http.ResponseWriter, r *http.Request) {
	png, err := h.Catalog.ColorMap(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger().DebugContext(r.Context(), "color map write failed", "error", err)
	}
}

// healthHandler returns a simple 200 OK status for readiness/liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	// Nothing more to do if the client connection is gone.
	_, _ = w.Write([]byte(healthResponse))
}
