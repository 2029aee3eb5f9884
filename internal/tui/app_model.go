// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeman45/encrypted-Diary/internal/config"
	"github.com/Freeman45/encrypted-Diary/internal/service"
	"github.com/Freeman45/encrypted-Diary/internal/wallet"
	"github.com/Freeman45/encrypted-Diary/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenConnect screen = iota
	screenList
	screenCompose
	screenDetail
)

// appModel is the root bubbletea model of the diary client. Every slow
// operation (wallet handshake, key derivation, persistence, on-chain
// submission) runs as a tea.Cmd on its own goroutine and reports back with
// a message; Update never blocks.
type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	connector wallet.Connector
	buildInfo models.AppBuildInfo

	currentScreen screen

	connect connectModel
	list    listModel
	compose composeModel
	detail  detailModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showBuildInfo bool
}

func newAppModel(
	ctx context.Context,
	services *service.ClientServices,
	connector wallet.Connector,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
) appModel {
	return appModel{
		ctx:       ctx,
		services:  services,
		connector: connector,
		buildInfo: buildInfo,

		currentScreen: screenConnect,
		connect:       newConnectModel(cfg.Wallet.ProviderURL, cfg.Chain, cfg.Contract),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// ctrl+c завершает программу с любого экрана, включая редактор
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteEntry(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case sessionReadyMsg:
		m.connect.connecting = false
		if msg.err != nil {
			m.connect.errMsg = humanizeProviderError(msg.err)
			return m, nil
		}
		m.connect.errMsg = ""
		m.list = newListModel()
		m.list.address = msg.address
		m.refreshEntries()
		m.list.status = "Кошелёк подключён"
		m.currentScreen = screenList
		return m, cmdClearStatus()
	case entrySavedMsg:
		m.compose.saving = false
		if msg.err != nil {
			m.compose.errMsg = saveErrorMessage(msg.err)
			return m, nil
		}
		m.compose = newComposeModel()
		m.currentScreen = screenList
		m.refreshEntries()
		m.list.idx = 0
		if m.services.DiaryService.RemoteEnabled() {
			// запись уже на диске, в блокчейн уходит её копия
			m.list.submitting = true
			m.list.status = "Запись сохранена"
			return m, tea.Batch(m.list.spinner.Tick, m.cmdSubmitEntry(msg.entry.ID))
		}
		m.list.status = "Запись сохранена"
		return m, cmdClearStatus()
	case entryDeletedMsg:
		if msg.err != nil {
			m.showErrorf("Ошибка удаления: " + msg.err.Error())
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenList
		m.refreshEntries()
		m.list.status = "Запись удалена"
		return m, cmdClearStatus()
	case submitDoneMsg:
		m.list.submitting = false
		if msg.err != nil {
			m.showErrorf("Запись сохранена локально, но не попала в блокчейн: " + humanizeProviderError(msg.err))
			return m, nil
		}
		status := "В блокчейне: " + fitText(msg.txHash, 24)
		m.list.status = status
		if m.currentScreen == screenDetail {
			m.detail.status = status
		}
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf("Ошибка копирования: " + msg.err.Error())
			return m, nil
		}
		if m.currentScreen == screenDetail {
			m.detail.status = "Скопировано!"
		}
		m.list.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		// крутилки живут дольше экрана: отправка идёт и из детального вида
		var cmd tea.Cmd
		if m.connect.connecting {
			m.connect.spinner, cmd = m.connect.spinner.Update(msg)
			return m, cmd
		}
		if m.list.submitting {
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenConnect:
		return m.updateConnect(msg)
	case screenList:
		return m.updateList(msg)
	case screenCompose:
		return m.updateCompose(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenConnect:
		body = m.connect.View()
	case screenList:
		body = m.list.View()
	case screenCompose:
		body = m.compose.View()
	case screenDetail:
		body = m.detail.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// refreshEntries re-reads the in-memory list from the service and keeps the
// cursor inside bounds.
func (m *appModel) refreshEntries() {
	m.list.items = m.services.DiaryService.Entries()
	if m.list.idx >= len(m.list.items) {
		m.list.idx = len(m.list.items) - 1
	}
	if m.list.idx < 0 {
		m.list.idx = 0
	}
}

func (m appModel) updateConnect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.connect.connecting {
			return m, nil
		}
		m.connect.connecting = true
		m.connect.errMsg = ""
		return m, tea.Batch(m.connect.spinner.Tick, m.cmdConnect())
	}

	return m, nil
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.toggle):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.services.DiaryService.ToggleVisibility(entry.ID)
		m.refreshEntries()
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = newDetailModel(entry, m.services.DiaryService.Reveal(entry.ID))
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newEntry):
		m.compose = newComposeModel()
		m.currentScreen = screenCompose
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.submit):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		if !m.services.DiaryService.RemoteEnabled() {
			m.list.status = "Отправка в блокчейн выключена в настройках"
			return m, cmdClearStatus()
		}
		if m.list.submitting {
			return m, nil
		}
		m.list.submitting = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdSubmitEntry(entry.ID))
	case key.Matches(keyMsg, keys.delete):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = formatEntryTime(entry.Timestamp)
		m.pendingDelete = entry.ID
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.list.address)
	case key.Matches(keyMsg, keys.lock):
		// ключ и расшифрованные тексты стираются из памяти
		m.services.DiaryService.Lock()
		m.connector.Disconnect()
		m.list = newListModel()
		m.connect.errMsg = ""
		m.currentScreen = screenConnect
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.compose = newComposeModel()
			m.currentScreen = screenList
			return m, nil
		case "ctrl+s":
			if m.compose.saving {
				return m, nil
			}
			text := m.compose.area.Value()
			if strings.TrimSpace(text) == "" {
				m.compose.errMsg = "Запись пуста. Нечего сохранять"
				return m, nil
			}
			m.compose.errMsg = ""
			m.compose.saving = true
			return m, m.cmdSaveEntry(text)
		}
	}

	var cmd tea.Cmd
	m.compose.area, cmd = m.compose.area.Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail.status = ""
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if !m.detail.result.Valid {
			m.detail.status = "Нечего копировать"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(m.detail.result.Plaintext)
	case key.Matches(keyMsg, keys.submit):
		if !m.detail.result.Valid {
			return m, nil
		}
		if !m.services.DiaryService.RemoteEnabled() {
			m.detail.status = "Отправка в блокчейн выключена в настройках"
			return m, cmdClearStatus()
		}
		if m.list.submitting {
			return m, nil
		}
		m.list.submitting = true
		m.detail.status = "Отправка в блокчейн..."
		return m, tea.Batch(m.list.spinner.Tick, m.cmdSubmitEntry(m.detail.entry.ID))
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = formatEntryTime(m.detail.entry.Timestamp)
		m.pendingDelete = m.detail.entry.ID
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdConnect() tea.Cmd {
	ctx := m.ctx
	connector := m.connector
	diary := m.services.DiaryService

	return func() tea.Msg {
		address, err := connector.Connect(ctx)
		if err != nil {
			return sessionReadyMsg{err: err}
		}
		if err := diary.Unlock(ctx, address); err != nil {
			connector.Disconnect()
			return sessionReadyMsg{err: err}
		}
		return sessionReadyMsg{address: address}
	}
}

func (m appModel) cmdSaveEntry(text string) tea.Cmd {
	ctx := m.ctx
	diary := m.services.DiaryService

	return func() tea.Msg {
		entry, err := diary.SaveEntry(ctx, text)
		return entrySavedMsg{entry: entry, err: err}
	}
}

func (m appModel) cmdDeleteEntry(entryID string) tea.Cmd {
	ctx := m.ctx
	diary := m.services.DiaryService

	return func() tea.Msg {
		err := diary.DeleteEntry(ctx, entryID)
		return entryDeletedMsg{err: err}
	}
}

func (m appModel) cmdSubmitEntry(entryID string) tea.Cmd {
	ctx := m.ctx
	diary := m.services.DiaryService

	return func() tea.Msg {
		txHash, err := diary.SubmitEntry(ctx, entryID)
		return submitDoneMsg{entryID: entryID, txHash: txHash, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
