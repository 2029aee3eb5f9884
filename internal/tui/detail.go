// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package tui

import (
	"strings"

	"github.com/Freeman45/encrypted-Diary/internal/crypto"
	"github.com/Freeman45/encrypted-Diary/models"
)

// detailModel shows one entry after an explicit reveal: the decrypted text
// together with the outcome of the integrity check.
type detailModel struct {
	entry  models.DiaryEntry
	result models.RevealResult
	status string
}

func newDetailModel(entry models.DiaryEntry, result models.RevealResult) detailModel {
	return detailModel{entry: entry, result: result}
}

// revealFailureText maps machine-readable reveal reasons to the text shown
// to the user.
func revealFailureText(reason string) string {
	switch reason {
	case crypto.ReasonUndecryptable:
		return "Не удалось расшифровать запись. Она была создана другим аккаунтом?"
	case crypto.ReasonHashMismatch:
		return "Текст расшифрован, но контрольный хеш не совпадает. Запись могла быть изменена"
	default:
		return reason
	}
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString("Создана   : " + formatEntryTime(m.entry.Timestamp) + "\n")

	if m.result.Valid {
		b.WriteString("Подпись   : " + validStyle.Render("✓ целостность подтверждена") + "\n\n")
		b.WriteString("[ ТЕКСТ ]\n")
		b.WriteString(m.result.Plaintext + "\n")
	} else {
		b.WriteString("Подпись   : " + invalidStyle.Render("✗ "+revealFailureText(m.result.Reason)) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "c: копировать │ s: в блокчейн │ d: удалить │ esc: назад"
	if !m.result.Valid {
		hotKeys = "d: удалить │ esc: назад"
	}

	return renderPage(
		"ЗАПИСЬ ОТ "+formatEntryTime(m.entry.Timestamp),
		strings.TrimRight(b.String(), "\n"),
		hotKeys,
	)
}
