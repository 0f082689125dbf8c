package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/internal/mock"
	"github.com/MKhiriev/go-model-viewer/internal/store"
	"github.com/MKhiriev/go-model-viewer/internal/viewer"
	"github.com/MKhiriev/go-model-viewer/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testModelID = "0f6b2c3e-6a51-4b7f-9a43-7d2c1e0b9a11"

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func testSummaries() []models.ModelSummary {
	return []models.ModelSummary{
		{ID: testModelID, Name: "Chair", CreatedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "1c9d8e7f-0000-4000-8000-000000000002", Name: "Table", CreatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func testRecord() models.Model {
	return models.Model{
		ID:      testModelID,
		Name:    "Chair",
		FileURL: "/api/assets/owner/chair.glb",
		SavedViews: []models.SavedView{
			{ID: "v1", Name: "Front", Position: &models.Vector3{Y: 1, Z: 5}, Target: &models.Vector3{}},
		},
	}
}

func newTestMainLoop(t *testing.T) (mainLoopModel, *mock.MockClientModelService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientModelService(ctrl)
	m := newMainLoopModel(context.Background(), svc, models.UserSummary{Email: "ann@example.com", Name: "Ann"}, "http://localhost:8080", logger.Nop())
	return m, svc
}

// step feeds msg into the model and returns the updated main loop.
func step(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(mainLoopModel)
	require.True(t, ok)
	return out, cmd
}

// run executes an asynchronous command and feeds its result back.
func run(t *testing.T, m mainLoopModel, cmd tea.Cmd) mainLoopModel {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())
	return m
}

func loaded(t *testing.T, m mainLoopModel, svc *mock.MockClientModelService) mainLoopModel {
	t.Helper()
	svc.EXPECT().List(gomock.Any()).Return(testSummaries(), nil)
	return run(t, m, m.Init())
}

func openedRecord(t *testing.T, m mainLoopModel, svc *mock.MockClientModelService) mainLoopModel {
	t.Helper()
	svc.EXPECT().Get(gomock.Any(), testModelID).Return(testRecord(), nil)
	m, cmd := step(t, m, keyEnter)
	return run(t, m, cmd)
}

// ── list ──

func TestMainLoop_InitLoadsModels(t *testing.T) {
	m, svc := newTestMainLoop(t)

	m = loaded(t, m, svc)

	assert.False(t, m.loading)
	assert.Len(t, m.items, 2)
	assert.Contains(t, m.View(), "Chair")
	assert.Contains(t, m.View(), "Table")
}

func TestMainLoop_LoadErrorShowsOverlay(t *testing.T) {
	m, svc := newTestMainLoop(t)
	svc.EXPECT().List(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))

	m = run(t, m, m.Init())

	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Сервер недоступен")

	m, _ = step(t, m, keyEsc)
	assert.Nil(t, m.overlay)
}

func TestMainLoop_Navigation(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m, _ = step(t, m, keyRunes("j"))
	assert.Equal(t, 1, m.idx)
	m, _ = step(t, m, keyRunes("j"))
	assert.Equal(t, 1, m.idx)
	m, _ = step(t, m, keyRunes("k"))
	assert.Equal(t, 0, m.idx)
}

func TestMainLoop_Logout(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m, cmd := step(t, m, keyRunes("l"))

	assert.True(t, m.logout)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_DeleteWithConfirmation(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m, _ = step(t, m, keyRunes("x"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Chair")

	svc.EXPECT().Delete(gomock.Any(), testModelID).Return(nil)
	m, cmd := step(t, m, keyRunes("y"))
	assert.Nil(t, m.confirm)

	m = run(t, m, cmd)
	assert.False(t, m.busy)
	assert.Equal(t, "Модель удалена", m.status)
}

func TestMainLoop_DeleteCancelled(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m, _ = step(t, m, keyRunes("x"))
	m, cmd := step(t, m, keyRunes("n"))

	assert.Nil(t, m.confirm)
	assert.Nil(t, cmd)
}

func TestMainLoop_CreateRequiresFields(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m, _ = step(t, m, keyRunes("c"))
	require.Equal(t, formCreate, m.form.kind)
	m, _ = step(t, m, keyRunes("Chair"))

	m, cmd := step(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.form.errMsg)
	assert.True(t, m.form.active())
}

func TestMainLoop_CreateOpensRecord(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m, _ = step(t, m, keyRunes("c"))
	m, _ = step(t, m, keyRunes("Chair"))
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = step(t, m, keyRunes("chair.glb"))

	svc.EXPECT().
		Create(gomock.Any(), models.CreateModelRequest{Name: "Chair", FileURL: "chair.glb"}).
		Return(testRecord(), nil)
	m, cmd := step(t, m, keyEnter)
	assert.False(t, m.form.active())

	m = run(t, m, cmd)
	assert.Equal(t, "Модель создана", m.status)
	assert.True(t, m.busy)
}

func TestMainLoop_RenamePrefillsName(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m, _ = step(t, m, keyRunes("e"))
	require.Equal(t, formRename, m.form.kind)
	assert.Equal(t, []string{"Chair"}, m.form.values())

	m, _ = step(t, m, keyRunes("s"))
	svc.EXPECT().Rename(gomock.Any(), testModelID, "Chairs").Return(nil)
	m, cmd := step(t, m, keyEnter)

	m = run(t, m, cmd)
	assert.Equal(t, "Модель переименована", m.status)
}

func TestMainLoop_FormEscCancels(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m, _ = step(t, m, keyRunes("u"))
	require.True(t, m.form.active())

	m, _ = step(t, m, keyEsc)

	assert.False(t, m.form.active())
}

// ── viewer ──

func TestMainLoop_OpenRecord(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m = openedRecord(t, m, svc)

	assert.Equal(t, pageViewer, m.page)
	view := m.View()
	assert.Contains(t, view, "Chair")
	assert.Contains(t, view, "http://localhost:8080/api/assets/owner/chair.glb")
	assert.Contains(t, view, "Front")
	assert.Contains(t, view, "v: сохранить вид")
}

func TestMainLoop_OpenNotFound(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	svc.EXPECT().Get(gomock.Any(), testModelID).Return(models.Model{}, store.ErrModelNotFound)
	m, cmd := step(t, m, keyEnter)
	m = run(t, m, cmd)

	assert.Equal(t, pageList, m.page)
	require.NotNil(t, m.overlay)
	assert.Equal(t, "Модель не найдена", m.overlay.message)
}

func TestMainLoop_CameraAndSelectView(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)
	m = openedRecord(t, m, svc)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.NotEqual(t, viewer.DefaultPose, m.session.Displayed())

	m, _ = step(t, m, keyEnter)
	assert.Equal(t, models.Vector3{Y: 1, Z: 5}, m.session.Displayed().Position)
	assert.Len(t, m.session.Views(), 1)

	m, _ = step(t, m, keyRunes("+"))
	m, _ = step(t, m, keyRunes("0"))
	assert.Equal(t, viewer.DefaultPose, m.session.Displayed())
}

func TestMainLoop_SaveView(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)
	m = openedRecord(t, m, svc)

	m, _ = step(t, m, keyRunes("v"))
	require.Equal(t, formViewName, m.form.kind)
	m, _ = step(t, m, keyRunes("Side"))

	svc.EXPECT().
		AddView(gomock.Any(), testModelID, "Side", viewer.DefaultPose.CameraPose()).
		Return(models.SavedView{ID: "v2", Name: "Side"}, nil)
	m, cmd := step(t, m, keyEnter)

	m = run(t, m, cmd)
	assert.Len(t, m.session.Views(), 2)
	assert.Equal(t, 1, m.viewIdx)
	assert.Contains(t, m.status, "Side")
}

func TestMainLoop_SaveViewRequiresName(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)
	m = openedRecord(t, m, svc)

	m, _ = step(t, m, keyRunes("v"))
	m, cmd := step(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, "Введите название вида", m.form.errMsg)
}

func TestMainLoop_DemoIsReadOnly(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m, cmd := step(t, m, keyRunes("m"))
	m = run(t, m, cmd)
	require.Equal(t, pageViewer, m.page)
	assert.Contains(t, m.View(), "Demo Model")
	assert.NotContains(t, m.View(), "v: сохранить вид")

	m, _ = step(t, m, keyRunes("v"))

	assert.False(t, m.form.active())
	require.NotNil(t, m.overlay)
	assert.Equal(t, "Демо-модель доступна только для просмотра", m.overlay.message)
}

func TestMainLoop_NewModelAttachAndUpload(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m, cmd := step(t, m, keyRunes("n"))
	m = run(t, m, cmd)
	require.Equal(t, viewer.KindNew, m.session.Kind())

	m, _ = step(t, m, keyRunes("o"))
	require.Equal(t, formAttach, m.form.kind)
	m, _ = step(t, m, keyRunes("/tmp/scans/chair.fbx"))
	m, _ = step(t, m, keyEnter)
	assert.Equal(t, "Поддерживаются только .glb, .gltf и .obj", m.form.errMsg)

	m, _ = step(t, m, keyEsc)
	m, _ = step(t, m, keyRunes("o"))
	m, _ = step(t, m, keyRunes("/tmp/scans/chair.glb"))
	m, _ = step(t, m, keyEnter)
	assert.False(t, m.form.active())
	assert.Equal(t, "/tmp/scans/chair.glb", m.session.LocalFile())
	assert.Contains(t, m.View(), "не сохранено")

	svc.EXPECT().UploadAndCreate(gomock.Any(), "chair", "/tmp/scans/chair.glb").Return(testRecord(), nil)
	m, cmd = step(t, m, keyRunes("u"))
	m = run(t, m, cmd)
	assert.Equal(t, "Модель создана", m.status)
}

func TestMainLoop_EscReturnsToList(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)
	m = openedRecord(t, m, svc)

	m, _ = step(t, m, keyEsc)

	assert.Equal(t, pageList, m.page)
}
