package httpx

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/L-P/mme/internal/format"
	"github.com/L-P/mme/internal/mocks"
	"github.com/L-P/mme/internal/service"
	"github.com/L-P/mme/internal/testutil"
)

func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Formats:    format.NewRegistry(),
		Logger:     testutil.DiscardLogger(),
	})
	require.NoError(t, err)
	return tr
}

// newMockRouter builds a router with API and UI enabled over a mock catalog.
func newMockRouter(t *testing.T) (http.Handler, *mocks.MockCatalog) {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)

	h, err := NewRouter(RouterServices{
		Catalog:   catalog,
		Query:     service.NewQueryService(service.QueryServiceOptions{}),
		Renderer:  newTestRenderer(t),
		EnableAPI: true,
		EnableUI:  true,
		Logger:    testutil.DiscardLogger(),
	})
	require.NoError(t, err)
	return h, catalog
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
