package format

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []string{"bool", "hex", "humanizeBytes", "maybeHex"}, reg.Names())

	_, ok := reg.Lookup("hex")
	assert.True(t, ok)
	_, ok = reg.Lookup("uppercase")
	assert.False(t, ok)
}

func TestRegistry_FuncMapIsACopy(t *testing.T) {
	reg := NewRegistry()
	fm := reg.FuncMap()
	delete(fm, FilterHex)

	_, ok := reg.Lookup(FilterHex)
	assert.True(t, ok)
	assert.Len(t, reg.FuncMap(), 4)
}

func TestRegistry_InTemplate(t *testing.T) {
	reg := NewRegistry()
	tmpl, err := template.New("row").Funcs(reg.FuncMap()).Parse(
		`{{ hex .Start 8 }}|{{ hex .ID }}|{{ maybeHex .Cell 2 }}|{{ maybeHex .Count 2 }}|{{ bool .Valid }}|{{ humanizeBytes .Size }}`,
	)
	require.NoError(t, err)

	data := map[string]any{
		"Start": uint32(0x00AD1000),
		"ID":    uint16(0x1F),
		"Cell":  "n/a",
		"Count": 16,
		"Valid": true,
		"Size":  1536,
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))
	assert.Equal(t, "0x00AD1000|0x1F|n/a|0x10|t|1.5 KiB", buf.String())
}

func TestRegistry_TemplateSurfacesFilterErrors(t *testing.T) {
	reg := NewRegistry()
	tmpl, err := template.New("bad").Funcs(reg.FuncMap()).Parse(`{{ hex .Name 4 }}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{"Name": "Z2_TOWN"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot convert")
}
