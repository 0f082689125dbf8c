package tui

import (
	"context"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the two interactive phases of the client: signing in and the
// signed-in main loop.
type TUI struct {
	services  *service.ClientServices
	baseURL   string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New builds the terminal UI. baseURL resolves server-relative file
// locators for display and copying.
func New(services *service.ClientServices, baseURL string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		baseURL:   baseURL,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// LoginFlow shows the menu, login and registration pages until the user is
// signed in. Returns [ErrUserQuit] when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.UserSummary, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(ctx, pages, "menu", t.buildInfo, t.services.AppInfoService)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.UserSummary{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.UserSummary{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authorized {
		return models.UserSummary{}, ErrUserQuit
	}

	return result.user, nil
}

// MainLoop shows the model list and the viewer. logout is true when the user
// asked to sign out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, user models.UserSummary) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services.ModelService, user, t.baseURL, t.logger)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
