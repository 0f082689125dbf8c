package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-model-viewer/internal/app"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/utils"
	"github.com/MKhiriev/go-model-viewer/internal/validators"
	"github.com/MKhiriev/go-model-viewer/models"
)

const authCookieName = "auth-token"

const defaultCookieMaxAge = 7 * 24 * time.Hour

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrInvalidEmail):
			log.Err(err).Msg("invalid email provided")
			utils.WriteError(w, app.MsgInvalidEmail, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, app.MsgMissingEmailOrPassword, http.StatusBadRequest)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteError(w, app.MsgEmailAlreadyExists, http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteError(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
		}
		return
	}

	if !h.issueCredential(w, r, registeredUser) {
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgRegistrationSuccessful,
		User:    registeredUser.Summary(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, app.MsgMissingEmailOrPassword, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("no user was found/wrong password")
			h.metrics.IncLoginFailures()
			utils.WriteError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, app.MsgLoginFailed, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	if !h.issueCredential(w, r, foundUser) {
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoginSuccessful,
		User:    foundUser.Summary(),
	}, http.StatusOK)
}

// logout needs no credential: it only instructs the browser to drop the cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.authCookie("", -1))
	utils.WriteMessage(w, app.MsgLogoutSuccessful, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.UserSummary{
		ID:    identity.UserID,
		Name:  identity.Name,
		Email: identity.Email,
	}, http.StatusOK)
}

// issueCredential signs a token for user and hands it out both as the auth
// cookie and in the Authorization header. It writes the error response
// itself and reports whether the caller may continue.
func (h *Handler) issueCredential(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}

	maxAge := h.app.TokenDuration
	if maxAge <= 0 {
		maxAge = defaultCookieMaxAge
	}

	http.SetCookie(w, h.authCookie(token.SignedString, int(maxAge.Seconds())))
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	return true
}

func (h *Handler) authCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   !h.app.IsDevelopment(),
		SameSite: http.SameSiteStrictMode,
	}
}
