package tui

import (
	"github.com/MKhiriev/go-model-viewer/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch the active page. A non-nil Payload is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the authentication flow when Err is nil.
type LoginResult struct {
	Err  error
	User models.UserSummary
}

// RegisterResult is produced by the registration page. The server signs the
// new account in immediately, so a successful result also finishes the flow.
type RegisterResult struct {
	Err  error
	User models.UserSummary
}

type serverVersionMsg struct {
	version string
	err     error
}

type modelsLoadedMsg struct {
	items []models.ModelSummary
	err   error
}

type modelOpenedMsg struct {
	err error
}

type modelCreatedMsg struct {
	model models.Model
	err   error
}

type modelRenamedMsg struct {
	err error
}

type modelDeletedMsg struct {
	err error
}

type viewSavedMsg struct {
	view models.SavedView
	err  error
}

type clearStatusMsg struct{}
