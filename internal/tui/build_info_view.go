// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package tui

import (
	"strings"

	"github.com/Freeman45/encrypted-Diary/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Название приложения: Encrypted Diary\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.Version()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.Date()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.Commit()))

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}
