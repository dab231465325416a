package httpx

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/L-P/mme/internal/core"
	"github.com/L-P/mme/internal/service"
)

// RouterServices holds everything the HTTP router serves from.
type RouterServices struct {
	Catalog  core.Catalog
	Query    *service.QueryService // Optional: ?query= filtering on API lists
	Renderer *TemplateRenderer     // Required when EnableUI is set
	StaticFS fs.FS                 // Optional: served under /static/

	EnableAPI bool
	EnableUI  bool
	IsDev     bool         // Development mode flag for error details and caching
	Logger    *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router. Middleware is applied by
// the caller.
func NewRouter(services RouterServices) (http.Handler, error) {
	if services.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if services.EnableUI && services.Renderer == nil {
		return nil, errors.New("ui enabled without a template renderer")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	if services.EnableAPI {
		registerAPIRoutes(mux, &APIHandlers{
			Catalog: services.Catalog,
			Query:   services.Query,
			Logger:  services.Logger,
		})
	}

	var uiHandlers *UIHandlers
	if services.EnableUI {
		uiHandlers = &UIHandlers{
			T:       services.Renderer,
			Catalog: services.Catalog,
			IsDev:   services.IsDev,
			Logger:  services.Logger,
		}
		registerUIRoutes(mux, uiHandlers)

		if services.StaticFS != nil {
			mux.Handle("GET /static/", staticWithCacheHeaders(
				http.StripPrefix("/static/", http.FileServerFS(services.StaticFS)),
				services.IsDev,
			))
		}
	}

	return &notFoundHandler{mux: mux, uiHandlers: uiHandlers}, nil
}

func registerAPIRoutes(mux *http.ServeMux, h *APIHandlers) {
	mux.HandleFunc("GET /api/rom", h.ROM)
	mux.HandleFunc("GET /api/files", h.Files)
	mux.HandleFunc("GET /api/files/{start}", h.FileData)
	mux.HandleFunc("GET /api/scenes", h.Scenes)
	mux.HandleFunc("GET /api/scenes/{start}", h.Scene)
	mux.HandleFunc("GET /api/rooms/{start}", h.Room)
	mux.HandleFunc("GET /api/messages", h.Messages)
	mux.HandleFunc("GET /api/colormap", h.ColorMap)
}

func registerUIRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /colormap", h.ColorMap)
	mux.HandleFunc("GET /colormap.png", h.ColorMapImage)
	mux.HandleFunc("GET /files", h.Files)
	mux.HandleFunc("GET /files/{start}", h.FileDownload)
	mux.HandleFunc("GET /scenes", h.Scenes)
	mux.HandleFunc("GET /scenes/{start}", h.SceneDetail)
	mux.HandleFunc("GET /room/{start}", h.RoomDetail)
	mux.HandleFunc("GET /messages", h.Messages)
}

// staticWithCacheHeaders wraps a static file handler to add appropriate cache headers.
func staticWithCacheHeaders(handler http.Handler, isDev bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDev {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, pattern := h.mux.Handler(r); pattern != "" {
		h.mux.ServeHTTP(w, r)
		return
	}

	// The mux would answer 404 or 405; capture it so the body can be replaced.
	cw := newCaptureWriter()
	h.mux.ServeHTTP(cw, r)

	switch {
	case cw.status != http.StatusNotFound:
		cw.flushTo(w)
	case isAPIPath(r.URL.Path) || h.uiHandlers == nil:
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("not found"),
		})
	case strings.HasPrefix(r.URL.Path, "/static/"):
		cw.flushTo(w)
	default:
		h.uiHandlers.NotFound(w, r)
	}
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	_, _ = w.Write(c.buf.Bytes())
}
