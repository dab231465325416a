package format

import (
	"html/template"
	"maps"
	"slices"
)

// Filter names as used in templates.
const (
	FilterHex           = "hex"
	FilterMaybeHex      = "maybeHex"
	FilterBool          = "bool"
	FilterHumanizeBytes = "humanizeBytes"
)

// Registry maps filter names to their functions. Build it once with
// NewRegistry and hand it to whatever renders templates.
type Registry struct {
	funcs map[string]any
}

// NewRegistry returns a registry holding the hex, maybeHex, bool and
// humanizeBytes filters. The hex widths are optional in templates:
// {{ hex .VROMStart 8 }} and {{ hex .ID }} both work.
func NewRegistry() *Registry {
	return &Registry{
		funcs: map[string]any{
			FilterHex: func(v any, width ...int) (string, error) {
				return Hex(v, firstWidth(width))
			},
			FilterMaybeHex: func(v any, width ...int) any {
				return ConditionalHex(v, firstWidth(width))
			},
			FilterBool:          Bool,
			FilterHumanizeBytes: HumanizeBytes,
		},
	}
}

// Lookup returns the filter registered under name.
func (r *Registry) Lookup(name string) (any, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered filter names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.funcs))
}

// FuncMap returns a copy of the filters for template.Funcs.
func (r *Registry) FuncMap() template.FuncMap {
	out := make(template.FuncMap, len(r.funcs))
	maps.Copy(out, r.funcs)
	return out
}

func firstWidth(width []int) int {
	if len(width) == 0 {
		return 0
	}
	return width[0]
}
