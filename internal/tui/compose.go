package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
)

type composeModel struct {
	area   textarea.Model
	saving bool
	errMsg string
}

func newComposeModel() composeModel {
	ta := textarea.New()
	ta.Placeholder = "О чём вы думаете сегодня?"
	ta.SetWidth(54)
	ta.SetHeight(8)
	ta.Focus()

	return composeModel{area: ta}
}

func (m composeModel) View() string {
	out := m.area.View() + "\n"

	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}
	if m.saving {
		out += "\nШифрование и сохранение...\n"
	}

	return renderPage(
		"НОВАЯ ЗАПИСЬ",
		strings.TrimRight(out, "\n"),
		"enter: новая строка │ ctrl+s: сохранить │ esc: отмена",
	)
}
