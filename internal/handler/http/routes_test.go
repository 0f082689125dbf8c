package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_Version(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestInit_Metrics(t *testing.T) {
	h, deps := newTestHandler(t)
	router := h.Init()
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `model_viewer_http_requests_total{method="GET",route="/api/version/",status="200"} 1`)
}

func TestInit_StaticAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "3d"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3d", "duck.glb"), []byte("glTF-duck"), 0o644))

	cfg := testConfig()
	cfg.Server.StaticDir = dir
	h, _ := newTestHandlerWithConfig(t, cfg)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/assets/3d/duck.glb", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "glTF-duck", rec.Body.String())
}

func TestInit_StaticAssetsDisabledWithoutDir(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/assets/3d/duck.glb", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/api/models"},
		{http.MethodPatch, "/api/models/" + testModelID},
		{http.MethodGet, "/api/models/" + testModelID + "/views"},
	}

	for _, c := range cases {
		t.Run(c.method+" "+c.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, httptest.NewRequest(c.method, c.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/vault", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
