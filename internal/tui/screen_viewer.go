package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-model-viewer/internal/viewer"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var cameraMoves = []struct {
	binding key.Binding
	move    viewer.Move
}{
	{keys.orbitLeft, viewer.OrbitLeft},
	{keys.orbitRight, viewer.OrbitRight},
	{keys.orbitUp, viewer.OrbitUp},
	{keys.orbitDown, viewer.OrbitDown},
	{keys.panLeft, viewer.PanLeft},
	{keys.panRight, viewer.PanRight},
	{keys.panUp, viewer.PanUp},
	{keys.panDown, viewer.PanDown},
	{keys.zoomIn, viewer.ZoomIn},
	{keys.zoomOut, viewer.ZoomOut},
}

func (m mainLoopModel) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, cm := range cameraMoves {
		if key.Matches(msg, cm.binding) {
			m.session.MoveCamera(cm.move)
			return m, nil
		}
	}

	views := m.session.Views()

	switch {
	case key.Matches(msg, keys.esc):
		m.page = pageList
		return m, nil
	case key.Matches(msg, keys.reset):
		m.session.ResetCamera()
	case key.Matches(msg, keys.prevView):
		if m.viewIdx > 0 {
			m.viewIdx--
		}
	case key.Matches(msg, keys.nextView):
		if m.viewIdx < len(views)-1 {
			m.viewIdx++
		}
	case key.Matches(msg, keys.enter):
		if m.viewIdx < len(views) {
			if err := m.session.SelectView(views[m.viewIdx].ID); err != nil {
				return m.fail(err), nil
			}
			return m, m.setStatus("Применён вид \"" + views[m.viewIdx].Name + "\"")
		}
	case key.Matches(msg, keys.saveView):
		if !m.session.CanSave() {
			return m.fail(m.saveRefusal()), nil
		}
		m.form = newForm(formViewName, "СОХРАНИТЬ ВИД", formField{label: "Название вида", placeholder: "Front"})
	case key.Matches(msg, keys.copyURL):
		ref := absoluteURL(m.baseURL, m.session.Model().FileURL)
		if ref == "" {
			return m, nil
		}
		if err := clipboard.WriteAll(ref); err != nil {
			return m.fail(fmt.Errorf("ошибка копирования: %w", err)), nil
		}
		return m, m.setStatus("Ссылка на файл скопирована")
	case key.Matches(msg, keys.attach):
		if m.session.Kind() != viewer.KindNew {
			return m.fail(viewer.ErrNotPlaceholder), nil
		}
		m.form = newForm(formAttach, "ОТКРЫТЬ ЛОКАЛЬНЫЙ ФАЙЛ", formField{label: "Путь к файлу", placeholder: "./chair.glb"})
	case key.Matches(msg, keys.upload):
		path := m.session.LocalFile()
		if m.session.Kind() != viewer.KindNew || path == "" || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdUpload(m.session.Model().Name, path)
	}

	return m, nil
}

func (m mainLoopModel) saveRefusal() error {
	switch m.session.Kind() {
	case viewer.KindDemo:
		return viewer.ErrReadOnlyModel
	case viewer.KindNew:
		return viewer.ErrModelNotPersisted
	default:
		return viewer.ErrNoModelOpened
	}
}

func (m mainLoopModel) viewViewer() string {
	model := m.session.Model()
	pose := m.session.Displayed()
	views := m.session.Views()

	var b strings.Builder
	b.WriteString("Модель   │ ")
	b.WriteString(valueOrDash(model.Name))
	b.WriteString("\n")
	b.WriteString("ID       │ ")
	b.WriteString(valueOrDash(model.ID))
	b.WriteString("\n")
	b.WriteString("Файл     │ ")
	b.WriteString(valueOrDash(fitText(absoluteURL(m.baseURL, model.FileURL), 60)))
	b.WriteString("\n")

	switch m.session.Kind() {
	case viewer.KindDemo:
		b.WriteString(readOnlyStyle.Render("Демо-модель: только просмотр"))
		b.WriteString("\n")
	case viewer.KindNew:
		if m.session.LocalFile() == "" {
			b.WriteString(readOnlyStyle.Render("Новая модель: o, чтобы открыть локальный файл"))
		} else {
			b.WriteString(readOnlyStyle.Render("Локальный просмотр, не сохранено: u, чтобы загрузить на сервер"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nКамера\n")
	b.WriteString("  Позиция   ")
	b.WriteString(formatVector(pose.Position))
	b.WriteString("\n")
	b.WriteString("  Цель      ")
	b.WriteString(formatVector(pose.Target))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Дистанция %.2f\n", pose.Distance()))

	b.WriteString(fmt.Sprintf("\nСохранённые виды (%d)\n", len(views)))
	if len(views) == 0 {
		b.WriteString("  -\n")
	}
	for i, v := range views {
		line := fmt.Sprintf("%-3d %-24s %s → %s", i+1, fitText(v.Name, 24), formatOptionalVector(v.Position), formatOptionalVector(v.Target))
		if i == m.viewIdx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\nВыполняется...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	hotKeys := "←↑↓→: вращение │ w/a/s/d: сдвиг │ +/-: зум │ 0: сброс │ [ ]: выбор вида │ enter: применить │ c: копировать ссылку │ esc: назад"
	if m.session.CanSave() {
		hotKeys = "v: сохранить вид │ " + hotKeys
	}
	return renderPage("ПРОСМОТР", strings.TrimRight(b.String(), "\n"), hotKeys)
}
