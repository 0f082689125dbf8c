package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formKind int

const (
	formNone formKind = iota
	formCreate
	formUpload
	formRename
	formViewName
	formAttach
)

type formField struct {
	label       string
	placeholder string
	value       string
}

// formModel is a small stack of labelled text inputs shared by every dialog of
// the main loop.
type formModel struct {
	kind   formKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newForm(kind formKind, title string, fields ...formField) formModel {
	f := formModel{kind: kind, title: title}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.Width = 48
		in.CharLimit = 1024
		in.SetValue(field.value)
		if i == 0 {
			in.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

func (f formModel) active() bool {
	return f.kind != formNone
}

func (f formModel) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && len(f.inputs) > 1 {
		switch key.String() {
		case "tab", "down":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + 1) % len(f.inputs)
			f.inputs[f.focus].Focus()
			return f, nil
		case "shift+tab", "up":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
			f.inputs[f.focus].Focus()
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formModel) View() string {
	width := 0
	for _, label := range f.labels {
		width = max(width, lipgloss.Width(label))
	}

	var b strings.Builder
	for i, label := range f.labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(label)))
		b.WriteString(" │ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage(f.title, strings.TrimRight(b.String(), "\n"), "esc: отмена │ tab: след. поле │ enter: подтвердить")
}
