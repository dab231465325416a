package httpx

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/L-P/mme/internal/core"
	"github.com/L-P/mme/internal/rom"
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T       *TemplateRenderer
	Catalog core.Catalog
	IsDev   bool // Show error details on error pages
	Logger  *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageSpec defines metadata and the read backing a page.
type PageSpec struct {
	Page  string
	Meta  PageMeta
	Fetch func(ctx context.Context, data *TemplateDataBuilder) error
}

// Page builds base data, fetches page data, and renders. A failed fetch
// renders the error page instead.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	spec.Meta.CurrentPage = spec.Page
	data := NewTemplateData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			h.Error(w, r, err)
			return
		}
	}

	if err := h.T.Render(w, spec.Page, http.StatusOK, data.Build()); err != nil {
		h.renderTemplateFailure(w, r, err)
	}
}

// Error renders the error page with the status derived from err.
func (h *UIHandlers) Error(w http.ResponseWriter, r *http.Request, err error) {
	status, _ := errorStatus(err)

	msg := "The requested data could not be loaded."
	switch {
	case status == http.StatusNotFound:
		msg = "Nothing starts at this offset."
	case status == http.StatusBadRequest:
		msg = err.Error()
	case h.IsDev:
		msg = err.Error()
	}
	if status >= http.StatusInternalServerError {
		h.logger().ErrorContext(r.Context(), "ui read failed", "path", r.URL.Path, "error", err)
	}

	h.renderError(w, r, status, msg)
}

// NotFound renders the 404 page for unknown paths.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, "The page you're looking for doesn't exist.")
}

func (h *UIHandlers) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data := NewTemplateData(r, PageMeta{PageTitle: http.StatusText(status), CurrentPage: PageError}).
		WithError(status, msg).
		Build()

	if err := h.T.Render(w, PageError, status, data); err != nil {
		// Fallback to plain text if template rendering fails
		http.Error(w, msg, status)
	}
}

// renderTemplateFailure answers when a page template fails to execute.
func (h *UIHandlers) renderTemplateFailure(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().ErrorContext(r.Context(), "template rendering failed",
		"error", err,
		"path", r.URL.Path,
		"method", r.Method,
	)
	if h.IsDev {
		http.Error(w, "template rendering failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// Home renders the ROM identification block.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Page: PageHome,
		Meta: PageMeta{PageTitle: "ROM"},
		Fetch: func(ctx context.Context, data *TemplateDataBuilder) error {
			summary, err := h.Catalog.Summary(ctx)
			if err != nil {
				return err
			}
			data.With("ROM", summary)
			return nil
		},
	})
}

// ColorMap renders the page embedding the color map image.
func (h *UIHandlers) ColorMap(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Page: PageColorMap,
		Meta: PageMeta{PageTitle: "Color map"},
		Fetch: func(_ context.Context, data *TemplateDataBuilder) error {
			data.With("ImageURL", "/colormap.png").With("Side", 4096)
			return nil
		},
	})
}

// ColorMapImage serves the PNG referenced by the color map page.
func (h *UIHandlers) ColorMapImage(w http.ResponseWriter, r *http.Request) {
	png, err := h.Catalog.ColorMap(r.Context())
	if err != nil {
		h.Error(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// Files renders the file table.
func (h *UIHandlers) Files(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Page: PageFiles,
		Meta: PageMeta{PageTitle: "Files"},
		Fetch: func(ctx context.Context, data *TemplateDataBuilder) error {
			files, err := h.Catalog.Files(ctx)
			if err != nil {
				return err
			}
			data.With("Files", files)
			return nil
		},
	})
}

// FileDownload streams a file as an attachment.
func (h *UIHandlers) FileDownload(w http.ResponseWriter, r *http.Request) {
	start, err := parseStart(r)
	if err != nil {
		h.Error(w, r, err)
		return
	}
	data, err := h.Catalog.FileData(r.Context(), start)
	if err != nil {
		h.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%08X.bin"`, start))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Scenes renders the scene table.
func (h *UIHandlers) Scenes(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Page: PageScenes,
		Meta: PageMeta{PageTitle: "Scenes"},
		Fetch: func(ctx context.Context, data *TemplateDataBuilder) error {
			scenes, err := h.Catalog.Scenes(ctx)
			if err != nil {
				return err
			}
			data.With("Scenes", scenes)
			return nil
		},
	})
}

// Messages renders every message.
func (h *UIHandlers) Messages(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Page: PageMessages,
		Meta: PageMeta{PageTitle: "Messages"},
		Fetch: func(ctx context.Context, data *TemplateDataBuilder) error {
			msgs, err := h.Catalog.Messages(ctx)
			if err != nil {
				return err
			}
			data.With("Messages", msgs)
			return nil
		},
	})
}

// SceneDetail renders one scene with its header, rooms and entrance message.
// The scene and the message table are fetched concurrently.
func (h *UIHandlers) SceneDetail(w http.ResponseWriter, r *http.Request) {
	start, err := parseStart(r)
	if err != nil {
		h.Error(w, r, err)
		return
	}

	h.Page(w, r, PageSpec{
		Page: PageSceneDetail,
		Meta: PageMeta{PageTitle: "Scene"},
		Fetch: func(ctx context.Context, data *TemplateDataBuilder) error {
			var (
				scene *rom.Scene
				msgs  []rom.Message
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				scene, err = h.Catalog.Scene(gctx, start)
				return err
			})
			g.Go(func() error {
				var err error
				msgs, err = h.Catalog.Messages(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			data.With("Scene", scene).
				With("Header", headerFields(scene.LocationHeader)).
				WithTitle(sceneTitle(scene))
			if msg, ok := messageByID(msgs, scene.EntranceMessageID); ok {
				data.With("EntranceMessage", msg)
			}
			return nil
		},
	})
}

// RoomDetail renders one room with its header and actors.
func (h *UIHandlers) RoomDetail(w http.ResponseWriter, r *http.Request) {
	start, err := parseStart(r)
	if err != nil {
		h.Error(w, r, err)
		return
	}

	h.Page(w, r, PageSpec{
		Page: PageRoomDetail,
		Meta: PageMeta{PageTitle: "Room"},
		Fetch: func(ctx context.Context, data *TemplateDataBuilder) error {
			room, err := h.Catalog.Room(ctx, start)
			if err != nil {
				return err
			}
			data.With("Room", room).
				With("Header", headerFields(room.LocationHeader)).
				WithTitle(fmt.Sprintf("%s room %d", room.SceneName, room.ID))
			return nil
		},
	})
}

func sceneTitle(s *rom.Scene) string {
	if s.EntranceMessage != "" {
		return s.EntranceMessage
	}
	return s.Name
}
