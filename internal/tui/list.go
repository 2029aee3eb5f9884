package tui

import (
	"fmt"
	"strings"

	"github.com/Freeman45/encrypted-Diary/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	items   []models.DiaryEntry
	idx     int
	address string

	submitting bool
	spinner    spinner.Model
	status     string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s}
}

func (m listModel) current() (models.DiaryEntry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.DiaryEntry{}, false
	}
	return m.items[m.idx], true
}

// previewLine renders one list row: the text is shown only when the entry
// is toggled visible; everything else stays masked.
func previewLine(entry models.DiaryEntry) string {
	if !entry.IsVisible {
		return maskedStyle.Render(strings.Repeat("•", 12))
	}
	if entry.Plaintext == "" {
		return invalidStyle.Render("(не расшифровано)")
	}
	return fitText(firstLine(entry.Plaintext), 44)
}

func (m listModel) View() string {
	out := "Аккаунт: " + shortAddress(m.address)
	if m.submitting {
		out += "   " + m.spinner.View() + " отправка в блокчейн..."
	}
	out += "\n\n"

	if len(m.items) == 0 {
		out += "Записей нет. Нажмите n, чтобы написать первую.\n"
	} else {
		for i, entry := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s │ %s\n", cursor, formatEntryTime(entry.Timestamp), previewLine(entry))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	return renderPage(
		"МОИ ЗАПИСИ",
		strings.TrimRight(out, "\n"),
		"n: новая │ enter: открыть │ пробел: показать/скрыть │ s: в блокчейн │ d: удалить │ c: коп. адрес │ l: отключиться",
	)
}
