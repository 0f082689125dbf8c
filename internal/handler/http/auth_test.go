package http

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-model-viewer/internal/app"
	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/validators"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testUser = models.User{ID: testUserID, Email: "ada@example.com", Name: "ada"}

func authCookieFrom(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == authCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", authCookieName)
	return nil
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h, deps := newTestHandler(t)
	creds := models.User{Email: "ada@example.com", Password: "secret"}

	gomock.InOrder(
		deps.auth.EXPECT().Login(gomock.Any(), creds).Return(testUser, nil),
		deps.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(models.Token{SignedString: testToken}, nil),
	)

	rec := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/login", creds))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+testToken, rec.Header().Get("Authorization"))

	cookie := authCookieFrom(t, rec.Result())
	assert.Equal(t, testToken, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.False(t, cookie.Secure, "development cookies are not Secure")

	assert.JSONEq(t, `{"message":"Login successful","user":{"id":"`+testUserID+`","name":"ada","email":"ada@example.com"}}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), testToken)
}

func TestLogin_SecureCookieOutsideDevelopment(t *testing.T) {
	cfg := testConfig()
	cfg.App.Environment = config.EnvironmentProduction
	cfg.App.TokenDuration = 0
	h, deps := newTestHandlerWithConfig(t, cfg)

	deps.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(testUser, nil)
	deps.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: testToken}, nil)

	rec := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/login", models.User{Email: "a@b.c", Password: "p"}))

	cookie := authCookieFrom(t, rec.Result())
	assert.True(t, cookie.Secure)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{"missing fields", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgMissingEmailOrPassword},
		{"unknown email or wrong password", service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, app.MsgLoginFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rec := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/login", models.User{Email: "ada@example.com"}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec))
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", nil)
	req.Body = http.NoBody
	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_TokenCreationFails(t *testing.T) {
	h, deps := newTestHandler(t)

	deps.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(testUser, nil)
	deps.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/login", models.User{Email: "a@b.c", Password: "p"}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	h, deps := newTestHandler(t)
	payload := models.User{Email: "ada@example.com", Name: "ada", Password: "secret"}

	deps.auth.EXPECT().RegisterUser(gomock.Any(), payload).Return(testUser, nil)
	deps.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(models.Token{SignedString: testToken}, nil)

	rec := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/register", payload))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testToken, authCookieFrom(t, rec.Result()).Value)
	assert.Contains(t, rec.Body.String(), `"email":"ada@example.com"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{"duplicate email", store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
		{"malformed email", errors.Join(service.ErrInvalidDataProvided, validators.ErrInvalidEmail), http.StatusBadRequest, app.MsgInvalidEmail},
		{"missing password", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgMissingEmailOrPassword},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, app.MsgRegistrationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rec := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/register", models.User{Email: "x"}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec))
		})
	}
}

// ── logout / me ──────────────────────────────────────────────────────────────

func TestLogout_ExpiresCookie(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := authCookieFrom(t, rec.Result())
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
	assert.Equal(t, app.MsgLogoutSuccessful, decodeMessage(t, rec))
}

func TestMe(t *testing.T) {
	h, deps := newTestHandler(t)

	rec := serve(h, authorized(deps, jsonRequest(t, http.MethodGet, "/api/auth/me", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+testUserID+`","name":"ada","email":"ada@example.com"}`, rec.Body.String())
}

func TestMe_RequiresCredential(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, jsonRequest(t, http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), app.MsgUnauthorized))
}
