package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/L-P/mme/internal/core"
	apperrors "github.com/L-P/mme/internal/errors"
	"github.com/L-P/mme/internal/rom"
)

func decodeError(t *testing.T, body []byte) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestAPI_ROM(t *testing.T) {
	h, catalog := newMockRouter(t)
	catalog.EXPECT().Summary(gomock.Any()).Return(&core.ROMSummary{
		Name:      "ZELDA MAJORA'S MASK",
		CRC1:      "DA6983E7",
		CRC2:      "50674458",
		BuildTeam: "zelda@srd44",
		BuildDate: "2000-07-31 17:04:16",
	}, nil)

	rec := serve(h, http.MethodGet, "/api/rom")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, map[string]string{
		"Name":       "ZELDA MAJORA'S MASK",
		"CRC1":       "DA6983E7",
		"CRC2":       "50674458",
		"Build team": "zelda@srd44",
		"Build date": "2000-07-31 17:04:16",
	}, got)
}

func TestAPI_FilesWithQuery(t *testing.T) {
	h, catalog := newMockRouter(t)
	files := []rom.File{
		{DMAEntry: rom.DMAEntry{VROMStart: 0, VROMEnd: 0x1000}, Name: "makerom", Valid: true},
		{DMAEntry: rom.DMAEntry{VROMStart: 0x1000, VROMEnd: 0x2000}, Name: "Z2_TOWN", Type: rom.FileTypeScene, Valid: true},
	}
	catalog.EXPECT().Files(gomock.Any()).Return(files, nil).Times(3)

	rec := serve(h, http.MethodGet, "/api/files")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []rom.File
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	rec = serve(h, http.MethodGet, "/api/files?query=%5B%3FType%3D%3D%27scene%27%5D.Name")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Z2_TOWN"]`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/files?query=%5B%3F")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_query", decodeError(t, rec.Body.Bytes())["error"])
}

func TestAPI_EmptyListIsArray(t *testing.T) {
	h, catalog := newMockRouter(t)
	catalog.EXPECT().Messages(gomock.Any()).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/api/messages")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_StartParsing(t *testing.T) {
	h, catalog := newMockRouter(t)

	for _, target := range []string{"/api/scenes/abc", "/api/rooms/-1", "/api/files/0x10", "/api/scenes/4294967296"} {
		rec := serve(h, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "invalid_start", decodeError(t, rec.Body.Bytes())["error"], target)
	}

	catalog.EXPECT().Scene(gomock.Any(), uint32(47992832)).Return(&rom.Scene{Name: "Z2_TOWN"}, nil)
	rec := serve(h, http.MethodGet, "/api/scenes/47992832")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Name":"Z2_TOWN"`)
}

func TestAPI_NotFound(t *testing.T) {
	h, catalog := newMockRouter(t)
	catalog.EXPECT().Room(gomock.Any(), uint32(16)).Return(nil, apperrors.NotFoundf("no room starts at 0x00000010"))

	rec := serve(h, http.MethodGet, "/api/rooms/16")
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec.Body.Bytes())
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "no room starts at 0x00000010", body["message"])
}

func TestAPI_InternalErrorsAreNotEchoed(t *testing.T) {
	h, catalog := newMockRouter(t)
	catalog.EXPECT().Scenes(gomock.Any()).Return(nil, errors.New("secret detail"))

	rec := serve(h, http.MethodGet, "/api/scenes")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
}

func TestAPI_FileData(t *testing.T) {
	h, catalog := newMockRouter(t)
	catalog.EXPECT().FileData(gomock.Any(), uint32(4096)).Return([]byte{1, 2, 3}, nil)

	rec := serve(h, http.MethodGet, "/api/files/4096")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Equal(t, `attachment; filename="00001000.bin"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, []byte{1, 2, 3}, rec.Body.Bytes())
}

func TestAPI_ColorMap(t *testing.T) {
	h, catalog := newMockRouter(t)
	catalog.EXPECT().ColorMap(gomock.Any()).Return([]byte("\x89PNG"), nil)

	rec := serve(h, http.MethodGet, "/api/colormap")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestAPI_ColorMapTimeout(t *testing.T) {
	h, catalog := newMockRouter(t)
	catalog.EXPECT().ColorMap(gomock.Any()).
		Return(nil, apperrors.Wrap(context.DeadlineExceeded, apperrors.ErrCodeTimeout, "color map"))

	rec := serve(h, http.MethodGet, "/api/colormap")
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestHealth(t *testing.T) {
	h, _ := newMockRouter(t)

	rec := serve(h, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(h, http.MethodHead, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{errInvalidStart, http.StatusBadRequest, "invalid_start"},
		{apperrors.NotFoundf("x"), http.StatusNotFound, "not_found"},
		{apperrors.ValidationField("query", "bad"), http.StatusBadRequest, "invalid_query"},
		{apperrors.Validationf("bad"), http.StatusBadRequest, "validation_error"},
		{&apperrors.AppError{Code: apperrors.ErrCodeUnavailable}, http.StatusBadGateway, "unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		status, code := errorStatus(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}
