package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/service"
	"github.com/MKhiriev/go-model-viewer/internal/viewer"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type page int

const (
	pageList page = iota
	pageViewer
)

var statusTTL = 3 * time.Second

// mainLoopModel drives the signed-in part of the client: the model list and
// the viewer. Dialogs (form, confirmation, error) are drawn over the page.
type mainLoopModel struct {
	ctx     context.Context
	models  service.ClientModelService
	session *viewer.Session
	baseURL string
	user    models.UserSummary
	logger  *logger.Logger

	page    page
	items   []models.ModelSummary
	idx     int
	loading bool
	busy    bool
	viewIdx int
	status  string

	form    formModel
	confirm *confirmModel
	overlay *errorOverlayModel

	logout bool
}

func newMainLoopModel(ctx context.Context, modelService service.ClientModelService, user models.UserSummary, baseURL string, logger *logger.Logger) mainLoopModel {
	return mainLoopModel{
		ctx:     ctx,
		models:  modelService,
		session: viewer.NewSession(modelService, logger),
		baseURL: baseURL,
		user:    user,
		logger:  logger,
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadModels()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case modelsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.items = msg.items
		m.idx = min(max(m.idx, 0), max(len(m.items)-1, 0))
		return m, nil
	case modelOpenedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.page = pageViewer
		m.viewIdx = 0
		return m, nil
	case modelCreatedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.busy = true
		return m, tea.Batch(m.setStatus("Модель создана"), m.cmdOpen(msg.model.ID), m.cmdLoadModels())
	case modelRenamedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		return m, tea.Batch(m.setStatus("Модель переименована"), m.cmdLoadModels())
	case modelDeletedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		return m, tea.Batch(m.setStatus("Модель удалена"), m.cmdLoadModels())
	case viewSavedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.viewIdx = max(len(m.session.Views())-1, 0)
		return m, m.setStatus("Вид \"" + msg.view.Name + "\" сохранён")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form.active() {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.overlay != nil:
		if s := msg.String(); s == "enter" || s == "esc" {
			m.overlay = nil
		}
		return m, nil
	case m.confirm != nil:
		return m.updateConfirm(msg)
	case m.form.active():
		return m.updateForm(msg)
	case m.page == pageViewer:
		return m.updateViewer(msg)
	default:
		return m.updateList(msg)
	}
}

func (m mainLoopModel) View() string {
	switch {
	case m.overlay != nil:
		return appStyle.Render(m.overlay.View())
	case m.confirm != nil:
		return appStyle.Render(m.confirm.View())
	case m.form.active():
		return appStyle.Render(m.form.View())
	case m.page == pageViewer:
		return appStyle.Render(m.viewViewer())
	default:
		return appStyle.Render(m.viewList())
	}
}

func (m mainLoopModel) fail(err error) mainLoopModel {
	m.logger.Err(err).Str("func", "mainLoopModel.Update").Msg("operation failed")
	m.overlay = &errorOverlayModel{message: humanizeError(err)}
	return m
}

func (m *mainLoopModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = formModel{}
		return m, nil
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submitForm validates the dialog locally and starts the matching request.
// The dialog stays open with an error when local validation fails.
func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	values := m.form.values()

	switch m.form.kind {
	case formCreate:
		if values[0] == "" || values[1] == "" {
			m.form.errMsg = "Название и ссылка на файл обязательны"
			return m, nil
		}
		m.form, m.busy = formModel{}, true
		return m, m.cmdCreate(models.CreateModelRequest{Name: values[0], FileURL: values[1]})
	case formUpload:
		if values[1] == "" {
			m.form.errMsg = "Укажите путь к файлу"
			return m, nil
		}
		m.form, m.busy = formModel{}, true
		return m, m.cmdUpload(values[0], values[1])
	case formRename:
		item, ok := m.selected()
		if !ok {
			m.form = formModel{}
			return m, nil
		}
		if values[0] == "" {
			m.form.errMsg = "Название обязательно"
			return m, nil
		}
		m.form, m.busy = formModel{}, true
		return m, m.cmdRename(item.ID, values[0])
	case formViewName:
		if values[0] == "" {
			m.form.errMsg = humanizeError(viewer.ErrViewNameRequired)
			return m, nil
		}
		m.form, m.busy = formModel{}, true
		return m, m.cmdSaveView(values[0])
	case formAttach:
		if err := m.session.AttachLocalFile(values[0]); err != nil {
			m.form.errMsg = humanizeError(err)
			return m, nil
		}
		m.form = formModel{}
		return m, m.setStatus("Файл открыт локально и ещё не сохранён")
	}

	m.form = formModel{}
	return m, nil
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = nil
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, m.cmdDelete(item.ID)
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

// ── commands ──

func (m mainLoopModel) cmdLoadModels() tea.Cmd {
	ctx, svc := m.ctx, m.models
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return modelsLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdOpen(ref string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return modelOpenedMsg{err: session.Open(ctx, ref)}
	}
}

func (m mainLoopModel) cmdCreate(req models.CreateModelRequest) tea.Cmd {
	ctx, svc := m.ctx, m.models
	return func() tea.Msg {
		model, err := svc.Create(ctx, req)
		return modelCreatedMsg{model: model, err: err}
	}
}

func (m mainLoopModel) cmdUpload(name, path string) tea.Cmd {
	ctx, svc := m.ctx, m.models
	return func() tea.Msg {
		model, err := svc.UploadAndCreate(ctx, name, path)
		return modelCreatedMsg{model: model, err: err}
	}
}

func (m mainLoopModel) cmdRename(modelID, name string) tea.Cmd {
	ctx, svc := m.ctx, m.models
	return func() tea.Msg {
		return modelRenamedMsg{err: svc.Rename(ctx, modelID, name)}
	}
}

func (m mainLoopModel) cmdDelete(modelID string) tea.Cmd {
	ctx, svc := m.ctx, m.models
	return func() tea.Msg {
		return modelDeletedMsg{err: svc.Delete(ctx, modelID)}
	}
}

func (m mainLoopModel) cmdSaveView(name string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		view, err := session.SaveCurrentView(ctx, name)
		return viewSavedMsg{view: view, err: err}
	}
}
