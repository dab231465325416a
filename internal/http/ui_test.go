package httpx

import (
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "github.com/L-P/mme/internal/errors"
	"github.com/L-P/mme/internal/rom"
	"github.com/L-P/mme/internal/rom/romtest"
	"github.com/L-P/mme/internal/service"
	"github.com/L-P/mme/internal/testutil"
)

// newROMRouter serves the synthetic ROM through the real catalog service.
func newROMRouter(t *testing.T) http.Handler {
	t.Helper()
	catalog := service.MustNewCatalogService(service.CatalogServiceOptions{
		View:   romtest.View(t),
		Logger: testutil.DiscardLogger(),
	})

	h, err := NewRouter(RouterServices{
		Catalog:   catalog,
		Renderer:  newTestRenderer(t),
		EnableAPI: true,
		EnableUI:  true,
		Logger:    testutil.DiscardLogger(),
	})
	require.NoError(t, err)
	return h
}

func TestNewTemplateRenderer_LoadsPages(t *testing.T) {
	tr := newTestRenderer(t)
	for _, page := range []string{PageHome, PageColorMap, PageFiles, PageScenes, PageSceneDetail, PageRoomDetail, PageMessages, PageError} {
		assert.True(t, tr.Has(page), page)
	}

	_, err := NewTemplateRenderer(TemplateRendererConfig{})
	assert.Error(t, err)

	_, err = NewTemplateRenderer(TemplateRendererConfig{TemplateFS: os.DirFS(TemplatePathFromTest)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Formats")
}

func TestUI_Home(t *testing.T) {
	rec := serve(newROMRouter(t), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "ZELDA MAJORA&#39;S MASK")
	assert.Contains(t, body, "DA6983E7")
	assert.Contains(t, body, romtest.BuildTeam)
	assert.Contains(t, body, romtest.BuildDate)
	assert.Contains(t, body, `class="active" aria-current="page">ROM</a>`)
}

func TestUI_Files(t *testing.T) {
	rec := serve(newROMRouter(t), http.MethodGet, "/files")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "0x02DC5000")
	assert.Contains(t, body, `<a href="/scenes/47992832">scene</a>`)
	assert.Contains(t, body, "256 B")
	assert.Contains(t, body, "<td>t</td>")
	assert.Contains(t, body, "<td>f</td>")
}

func TestUI_FileDownload(t *testing.T) {
	rec := serve(newROMRouter(t), http.MethodGet, "/files/47992832")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, romtest.SceneEnd-romtest.SceneStart, rec.Body.Len())
}

func TestUI_ScenesAndDetail(t *testing.T) {
	h := newROMRouter(t)

	rec := serve(h, http.MethodGet, "/scenes")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), romtest.EntranceText)
	assert.Contains(t, rec.Body.String(), `<a href="/scenes/47992832">`+romtest.SceneName+`</a>`)

	rec = serve(h, http.MethodGet, "/scenes/47992832")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>"+romtest.EntranceText+" - mme</title>")
	assert.Contains(t, body, `<a href="/room/48234496">0</a>`)
	assert.Contains(t, body, "RoomsCount")
	assert.Contains(t, body, "0x01")
}

func TestUI_RoomDetail(t *testing.T) {
	rec := serve(newROMRouter(t), http.MethodGet, "/room/48234496")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "0x0010")
	assert.Contains(t, body, "Test Actor")
	assert.Contains(t, body, "-100, 50, 512")
	assert.Contains(t, body, "TimeStart")
	assert.Contains(t, body, "0xFFFF")
}

func TestUI_Messages(t *testing.T) {
	rec := serve(newROMRouter(t), http.MethodGet, "/messages")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Press [A] to\ngo!")
}

func TestUI_ColorMapPage(t *testing.T) {
	rec := serve(newROMRouter(t), http.MethodGet, "/colormap")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `src="/colormap.png"`)
}

func TestUI_NotFound(t *testing.T) {
	h := newROMRouter(t)

	rec := serve(h, http.MethodGet, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")

	rec = serve(h, http.MethodGet, "/room/12")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nothing starts at this offset.")

	rec = serve(h, http.MethodGet, "/scenes/zz")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "decimal VROM offset")

	rec = serve(h, http.MethodGet, "/api/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found","message":"not found"}`, rec.Body.String())
}

func TestUI_MethodNotAllowed(t *testing.T) {
	rec := serve(newROMRouter(t), http.MethodPost, "/scenes")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestUI_ReadFailureRendersErrorPage(t *testing.T) {
	h, catalog := newMockRouter(t)
	catalog.EXPECT().Scenes(gomock.Any()).Return(nil, errors.New("redis exploded"))

	rec := serve(h, http.MethodGet, "/scenes")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "The requested data could not be loaded.")
	assert.NotContains(t, body, "redis exploded")
}

func TestUI_SceneDetailFailsWhenMessagesFail(t *testing.T) {
	h, catalog := newMockRouter(t)
	catalog.EXPECT().Scene(gomock.Any(), uint32(1)).Return(&rom.Scene{Name: "x"}, nil).AnyTimes()
	catalog.EXPECT().Messages(gomock.Any()).Return(nil, &apperrors.AppError{Code: apperrors.ErrCodeUnavailable, Message: "api down"})

	rec := serve(h, http.MethodGet, "/scenes/1")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestNewRouter_Validation(t *testing.T) {
	_, err := NewRouter(RouterServices{})
	require.Error(t, err)

	_, catalog := newMockRouter(t)
	_, err = NewRouter(RouterServices{Catalog: catalog, EnableUI: true})
	require.Error(t, err)
}

func TestNewRouter_APIOnly(t *testing.T) {
	_, catalog := newMockRouter(t)

	apiOnly, err := NewRouter(RouterServices{Catalog: catalog, EnableAPI: true})
	require.NoError(t, err)

	rec := serve(apiOnly, http.MethodGet, "/")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHeaderFields(t *testing.T) {
	fields := headerFields(rom.LocationHeader{RoomsCount: 2, TimeStart: 0xFFFF, IsWorldMapLocation: true})
	require.Len(t, fields, 3)
	assert.Equal(t, HeaderField{Name: "RoomsCount", Value: byte(2), Width: 2}, fields[0])
	assert.Equal(t, HeaderField{Name: "TimeStart", Value: uint16(0xFFFF), Width: 4}, fields[1])
	assert.Equal(t, HeaderField{Name: "IsWorldMapLocation", Value: true, Width: 2}, fields[2])
}
