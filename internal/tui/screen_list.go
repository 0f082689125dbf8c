package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-model-viewer/internal/viewer"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) selected() (models.ModelSummary, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.ModelSummary{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadModels()
	case key.Matches(msg, keys.create):
		m.form = newForm(formCreate, "НОВАЯ МОДЕЛЬ",
			formField{label: "Название", placeholder: "Chair"},
			formField{label: "Ссылка на файл", placeholder: "https://example.com/chair.glb"},
		)
	case key.Matches(msg, keys.upload):
		m.form = newForm(formUpload, "ЗАГРУЗКА МОДЕЛИ",
			formField{label: "Название", placeholder: "по имени файла"},
			formField{label: "Путь к файлу", placeholder: "./chair.glb"},
		)
	case key.Matches(msg, keys.demo):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdOpen(viewer.DemoRef)
	case key.Matches(msg, keys.newOne):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdOpen(viewer.NewRef)
	}

	item, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdOpen(item.ID)
	case key.Matches(msg, keys.rename):
		m.form = newForm(formRename, "ПЕРЕИМЕНОВАНИЕ",
			formField{label: "Название", value: item.Name},
		)
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{message: item.Name}
	}

	return m, nil
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.user.Email != "" {
		b.WriteString("Пользователь: ")
		b.WriteString(valueOrDash(m.user.Name))
		b.WriteString(" <")
		b.WriteString(m.user.Email)
		b.WriteString(">\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.items) == 0:
		b.WriteString("Нет моделей. c: добавить по ссылке, u: загрузить файл\n")
	default:
		b.WriteString(fmt.Sprintf("  %-3s │ %-32s │ %s\n", "#", "Название", "Создана"))
		b.WriteString("──────┼──────────────────────────────────┼─────────────────\n")
		for i, item := range m.items {
			line := fmt.Sprintf("%-3d │ %-32s │ %s", i+1, fitText(item.Name, 32), item.CreatedAt.Local().Format("2006-01-02 15:04"))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.busy {
		b.WriteString("\nВыполняется...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("МОИ МОДЕЛИ", strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ c: по ссылке │ u: загрузить │ e: переим. │ x: удалить │ m: демо │ n: новая │ r: обновить │ l: выйти из аккаунта │ q: выход")
}
