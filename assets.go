// Package mme embeds the web UI assets so release binaries are self-contained.
package mme

import "embed"

// StaticFS holds frontend/static, served under /static/.
// Dev mode reads the directory from disk instead.
//
//go:embed all:frontend/static
var StaticFS embed.FS

// TemplateFS holds frontend/templates: layout.tmpl, partials/ and pages/.
//
//go:embed all:frontend/templates
var TemplateFS embed.FS
