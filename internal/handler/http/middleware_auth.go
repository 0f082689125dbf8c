package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-model-viewer/internal/app"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/utils"
)

// auth is an HTTP middleware that enforces credential-based authentication.
//
// Credentials are read from the "auth-token" cookie and from an
// "Authorization: Bearer <token>" header. The cookie is tried first; when it
// is missing or fails validation via [service.AuthService.ParseToken], the
// header is tried next, so a stale browser cookie does not shadow a valid
// bearer credential. On success the resolved [models.Identity] is stored in
// the request context under [utils.IdentityCtxKey] before delegating to the
// next handler.
//
// Every rejection (no credential, malformed header, bad signature, wrong
// issuer, expired) answers 401 with the same body and the next handler never
// runs. The reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		candidates, err := credentialsFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		for _, tokenString := range candidates {
			token, parseErr := h.services.AuthService.ParseToken(ctx, tokenString)
			if parseErr != nil {
				log.Err(parseErr).Msg("error occurred during parsing token")
				continue
			}

			ctx = context.WithValue(ctx, utils.IdentityCtxKey, token.Identity)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
	})
}

// credentialsFromRequest returns the raw tokens to try, cookie first.
//
// An empty cookie or a header that is not a bearer credential is skipped.
// When nothing usable remains it returns the reason:
//   - [ErrEmptyToken] if only an empty cookie was sent.
//   - [ErrInvalidAuthorizationHeader] if the header is not a bearer credential.
//   - [ErrNoCredential] if neither the cookie nor the header is present.
func credentialsFromRequest(r *http.Request) ([]string, error) {
	var (
		candidates []string
		reason     = ErrNoCredential
	)

	cookie, err := r.Cookie(authCookieName)
	switch {
	case err == nil && cookie.Value != "":
		candidates = append(candidates, cookie.Value)
	case err == nil:
		reason = ErrEmptyToken
	case !errors.Is(err, http.ErrNoCookie):
		return nil, err
	}

	if authHeader := strings.TrimSpace(r.Header.Get("Authorization")); authHeader != "" {
		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			reason = ErrInvalidAuthorizationHeader
		} else {
			candidates = append(candidates, tokenString)
		}
	}

	if len(candidates) == 0 {
		return nil, reason
	}
	return candidates, nil
}
