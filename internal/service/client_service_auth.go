package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-model-viewer/internal/adapter"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/utils"
	"github.com/MKhiriev/go-model-viewer/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter

	now func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.UserSummary, error) {
	summary, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	if err = a.persist(ctx, summary); err != nil {
		return models.UserSummary{}, err
	}
	return summary, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.UserSummary, error) {
	summary, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	if err = a.persist(ctx, summary); err != nil {
		return models.UserSummary{}, err
	}
	return summary, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.UserSummary, error) {
	log := logger.FromContext(ctx)

	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.UserSummary{}, ErrNoSavedSession
	}
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("load local session: %w", err)
	}

	if session.Expired(a.now()) {
		log.Info().Time("expires_at", session.ExpiresAt).Msg("saved session expired")
		a.forget(ctx)
		return models.UserSummary{}, ErrNoSavedSession
	}

	a.adapter.SetToken(session.Token)

	summary, err := a.adapter.Me(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		log.Info().Msg("saved session rejected by server")
		a.forget(ctx)
		return models.UserSummary{}, ErrNoSavedSession
	}
	if err != nil {
		return models.UserSummary{}, mapAdapterError(err)
	}

	return summary, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientAuthService.Logout").Msg("server logout failed")
	}
	a.adapter.SetToken("")

	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete local session: %w", err)
	}
	return nil
}

// persist saves the credential the adapter received so that the next run can
// skip the login form.
func (a *clientAuthService) persist(ctx context.Context, summary models.UserSummary) error {
	token := a.adapter.Token()
	if token == "" {
		return adapter.ErrNoCredentialInResponse
	}

	expiresAt, err := utils.ParseExpiryFromJWT(token)
	if err != nil {
		return fmt.Errorf("read credential expiry: %w", err)
	}

	err = a.sessions.SaveSession(ctx, models.LocalSession{
		Identity:  models.Identity{UserID: summary.ID, Email: summary.Email, Name: summary.Name},
		Token:     token,
		ExpiresAt: expiresAt,
		SavedAt:   a.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("save local session: %w", err)
	}
	return nil
}

func (a *clientAuthService) forget(ctx context.Context) {
	a.adapter.SetToken("")
	if err := a.sessions.DeleteSession(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientAuthService.forget").Msg("failed to delete local session")
	}
}
