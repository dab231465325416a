package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L-P/mme/internal/core"
	apperrors "github.com/L-P/mme/internal/errors"
	"github.com/L-P/mme/internal/rom"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewClient_Validation(t *testing.T) {
	for _, raw := range []string{"", "  ", "ftp://example.com", "://bad"} {
		_, err := NewClient(Config{BaseURL: raw})
		assert.Error(t, err, "base url %q", raw)
	}
}

func TestClient_Summary(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rom", r.URL.Path)
		_, _ = w.Write([]byte(`{"Name":"ZELDA MAJORA'S MASK","CRC1":"DA6983E7","CRC2":"50674458","Build team":"zelda@srd44","Build date":"2000-07-31 17:04:16"}`))
	}))

	got, err := c.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &core.ROMSummary{
		Name:      "ZELDA MAJORA'S MASK",
		CRC1:      "DA6983E7",
		CRC2:      "50674458",
		BuildTeam: "zelda@srd44",
		BuildDate: "2000-07-31 17:04:16",
	}, got)
}

func TestClient_Lists(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/files", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []rom.File{{
			DMAEntry: rom.DMAEntry{VROMStart: 0x1000, VROMEnd: 0x2000},
			Name:     "boot",
			Valid:    true,
		}})
	})
	mux.HandleFunc("GET /api/scenes/{start}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "47992832", r.PathValue("start"))
		s := rom.Scene{Name: "Z2_TOWN", Valid: true}
		s.VROMStart = 0x02DC5000
		writeJSON(w, http.StatusOK, s)
	})
	mux.HandleFunc("GET /api/files/{start}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte{0xDE, 0xAD})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	files, err := c.Files(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "boot", files[0].Name)
	assert.EqualValues(t, 0x1000, files[0].VROMStart)

	scene, err := c.Scene(ctx, 0x02DC5000)
	require.NoError(t, err)
	assert.Equal(t, "Z2_TOWN", scene.Name)
	assert.EqualValues(t, 0x02DC5000, scene.VROMStart)

	data, err := c.FileData(ctx, 0x1000)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD}, data)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		code   apperrors.ErrorCode
		msg    string
	}{
		{"not found", http.StatusNotFound, `{"error":"not_found","message":"no room starts at 0x00000010"}`, apperrors.ErrCodeNotFound, "no room starts"},
		{"bad request", http.StatusBadRequest, `{"error":"invalid_start","message":"bad"}`, apperrors.ErrCodeValidation, "bad"},
		{"server error", http.StatusBadGateway, `upstream down`, apperrors.ErrCodeUnavailable, "upstream down"},
		{"other", http.StatusTeapot, ``, apperrors.ErrCodeInternal, "I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := c.Room(context.Background(), 16)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.GetCode(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(Config{BaseURL: url})
	require.NoError(t, err)

	_, err = c.Messages(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestClient_Canceled(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ColorMap(ctx)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeCanceled, apperrors.GetCode(err))
}
