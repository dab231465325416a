package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"maps"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/L-P/mme/internal/format"
)

// TemplateRenderer renders HTML pages. Each page under pages/ is parsed on
// top of its own copy of layout.tmpl and partials/, and defines "content".
type TemplateRenderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS            // Filesystem containing templates (required)
	Formats    *format.Registry // Display filters, built once at startup (required)
	Logger     *slog.Logger     // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	if cfg.Formats == nil {
		return nil, errors.New("Formats is required")
	}
	formats := cfg.Formats
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	base, err := template.New("root").Funcs(templateFuncs(formats)).ParseFS(cfg.TemplateFS, "layout.tmpl", "partials/*.tmpl")
	if err != nil {
		logger.Error("template parsing failed", slog.Any("error", err), slog.String("phase", "initialization"))
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(cfg.TemplateFS, "pages/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no page templates found")
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", file, err)
		}
		if t, err = t.ParseFS(cfg.TemplateFS, file); err != nil {
			logger.Error("template parsing failed", slog.Any("error", err), slog.String("page", file))
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[strings.TrimSuffix(path.Base(file), ".tmpl")] = t
	}

	return &TemplateRenderer{pages: pages, logger: logger}, nil
}

// templateFuncs merges the display filters with the layout helpers.
func templateFuncs(formats *format.Registry) template.FuncMap {
	funcs := template.FuncMap{
		// dec renders a VROM offset the way URLs and the API expect it.
		"dec": func(v uint32) string { return strconv.FormatUint(uint64(v), 10) },
		"add": func(a, b int) int { return a + b },
	}
	maps.Copy(funcs, formats.FuncMap())
	return funcs
}

// Has reports whether a page template is loaded.
func (r *TemplateRenderer) Has(page string) bool {
	_, ok := r.pages[page]
	return ok
}

// Render executes page into a buffer and writes it with status. Nothing is
// written when execution fails.
func (r *TemplateRenderer) Render(w http.ResponseWriter, page string, status int, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.logger.Error("template execution failed",
			slog.String("template", page),
			slog.Any("error", err),
		)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Debug("failed to write rendered template",
			slog.String("template", page),
			slog.Any("error", err),
		)
	}
	return nil
}
