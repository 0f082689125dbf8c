package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/internal/tui"
	"github.com/MKhiriev/go-model-viewer/models"
)

// UI is the interactive surface driven by [App].
type UI interface {
	LoginFlow(ctx context.Context) (models.UserSummary, error)
	MainLoop(ctx context.Context, user models.UserSummary) (logout bool, err error)
}

// App ties the client services to the terminal UI.
type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run restores the saved session or asks the user to sign in, then runs the
// main loop until the user quits. Signing out returns to the login flow.
func (a *App) Run(ctx context.Context) error {
	for {
		user, err := a.signIn(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("logout failed")
		}
	}
}

func (a *App) signIn(ctx context.Context) (models.UserSummary, error) {
	user, err := a.services.AuthService.Restore(ctx)
	if err == nil {
		a.logger.Info().Str("user_id", user.ID).Msg("session restored")
		return user, nil
	}
	if !errors.Is(err, service.ErrNoSavedSession) {
		// the server may be down; let the user retry from the login page
		a.logger.Err(err).Str("func", "*App.signIn").Msg("restore session")
	}

	return a.ui.LoginFlow(ctx)
}
