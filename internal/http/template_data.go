package httpx

import "net/http"

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// basePageData constructs the common page data map shared by the layout.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	title := meta.Title
	if title == "" {
		title = meta.PageTitle
	}

	return map[string]any{
		"Title":       title + " - mme",
		"PageTitle":   meta.PageTitle,
		"CurrentPage": meta.CurrentPage,
		"Nav":         navigation,
		"RequestID":   GetRequestID(r.Context()),
	}
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: basePageData(r, meta)}
}

// WithError sets the status and message shown by the error page.
func (b *TemplateDataBuilder) WithError(status int, msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["Code"] = status
	b.data["Status"] = http.StatusText(status)
	b.data["ErrorMessage"] = msg
	return b
}

// WithTitle replaces the document and header titles once page data is known.
func (b *TemplateDataBuilder) WithTitle(title string) *TemplateDataBuilder {
	b.data["Title"] = title + " - mme"
	b.data["PageTitle"] = title
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
