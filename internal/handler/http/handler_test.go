package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/metrics"
	"github.com/MKhiriev/go-model-viewer/internal/mock"
	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken   = "signed-test-token"
	testUserID  = "0190a6e4-1111-7000-8000-000000000001"
	testModelID = "0190a6e4-2222-7000-8000-000000000002"
)

var testIdentity = models.Identity{UserID: testUserID, Email: "ada@example.com", Name: "ada"}

// testDeps holds the service doubles behind a Handler built by newTestHandler.
type testDeps struct {
	auth    *mock.MockAuthService
	models  *mock.MockModelService
	assets  *mock.MockAssetService
	appInfo *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenDuration: time.Hour,
			Environment:   config.EnvironmentDevelopment,
			Version:       "1.0.0",
		},
		Storage: config.Storage{
			Assets: config.Assets{MaxUploadSize: 1 << 20},
		},
	}
}

func newTestHandler(t *testing.T) (*Handler, testDeps) {
	t.Helper()
	return newTestHandlerWithConfig(t, testConfig())
}

func newTestHandlerWithConfig(t *testing.T, cfg config.StructuredConfig) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		auth:    mock.NewMockAuthService(ctrl),
		models:  mock.NewMockModelService(ctrl),
		assets:  mock.NewMockAssetService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	svcs := &service.Services{
		AuthService:    deps.auth,
		ModelService:   deps.models,
		AssetService:   deps.assets,
		AppInfoService: deps.appInfo,
	}

	return NewHandler(svcs, cfg, metrics.New(), logger.Nop()), deps
}

// serve sends req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// authorized attaches the auth cookie and lets the gate accept it.
func authorized(deps testDeps, req *http.Request) *http.Request {
	deps.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{SignedString: testToken, Identity: testIdentity}, nil)
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: testToken})
	return req
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Message
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	m := metrics.New()
	log := logger.Nop()

	h := NewHandler(svcs, testConfig(), m, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, m, h.metrics)
	assert.Same(t, log, h.logger)
	assert.Equal(t, int64(1<<20), h.maxUploadSize)
	assert.True(t, h.app.IsDevelopment())
}
