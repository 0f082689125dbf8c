package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/internal/utils"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── credentialsFromRequest ───────────────────────────────────────────────────

func TestCredentialsFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		cookie     *http.Cookie
		header     string
		wantTokens []string
		wantErr    error
	}{
		{
			name:       "cookie",
			cookie:     &http.Cookie{Name: authCookieName, Value: "from-cookie"},
			wantTokens: []string{"from-cookie"},
		},
		{
			name:       "bearer header",
			header:     "Bearer from-header",
			wantTokens: []string{"from-header"},
		},
		{
			name:       "cookie first then header",
			cookie:     &http.Cookie{Name: authCookieName, Value: "from-cookie"},
			header:     "Bearer from-header",
			wantTokens: []string{"from-cookie", "from-header"},
		},
		{
			name:    "nothing",
			wantErr: ErrNoCredential,
		},
		{
			name:    "basic scheme",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "scheme without token",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty cookie",
			cookie:  &http.Cookie{Name: authCookieName, Value: ""},
			wantErr: ErrEmptyToken,
		},
		{
			name:       "empty cookie falls through to header",
			cookie:     &http.Cookie{Name: authCookieName, Value: ""},
			header:     "Bearer from-header",
			wantTokens: []string{"from-header"},
		},
		{
			name:       "malformed header next to a cookie",
			cookie:     &http.Cookie{Name: authCookieName, Value: "from-cookie"},
			header:     "Basic dXNlcjpwYXNz",
			wantTokens: []string{"from-cookie"},
		},
		{
			name:       "other cookies are ignored",
			cookie:     &http.Cookie{Name: "theme", Value: "dark"},
			header:     "bearer lower-case-scheme",
			wantTokens: []string{"lower-case-scheme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			tokens, err := credentialsFromRequest(req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTokens, tokens)
		})
	}
}

// ── auth middleware ──────────────────────────────────────────────────────────

func executeAuth(h *Handler, req *http.Request) (*httptest.ResponseRecorder, *models.Identity) {
	var seen *models.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		if ok {
			seen = &identity
		}
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h.withTraceID(h.auth(next)).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuth_StoresIdentity(t *testing.T) {
	h, deps := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)

	deps.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{Identity: testIdentity}, nil)

	rec, seen := executeAuth(h, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, testIdentity, *seen)
}

func TestAuth_StaleCookieFallsBackToHeader(t *testing.T) {
	h, deps := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: "expired"})
	req.Header.Set("Authorization", "Bearer "+testToken)

	gomock.InOrder(
		deps.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid),
		deps.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{Identity: testIdentity}, nil),
	)

	rec, seen := executeAuth(h, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, testIdentity, *seen)
}

func TestAuth_ValidCookieSkipsHeader(t *testing.T) {
	h, deps := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: testToken})
	req.Header.Set("Authorization", "Bearer other")

	deps.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{Identity: testIdentity}, nil)

	rec, seen := executeAuth(h, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.NotNil(t, seen)
}

func TestAuth_RejectsWithoutCallingNext(t *testing.T) {
	t.Run("no credential", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec, seen := executeAuth(h, httptest.NewRequest(http.MethodGet, "/api/models", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("invalid or expired credential", func(t *testing.T) {
		h, deps := newTestHandler(t)
		req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: "forged"})

		deps.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

		rec, seen := executeAuth(h, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("cookie and header both invalid", func(t *testing.T) {
		h, deps := newTestHandler(t)
		req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: "expired"})
		req.Header.Set("Authorization", "Bearer forged")

		deps.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
		deps.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

		rec, seen := executeAuth(h, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})
}
