// Package tui implements the terminal interface of the diary client: a
// single bubbletea program with a connect screen, the entry list, a
// composer and a detail view, plus confirm and error overlays.
package tui

import (
	"context"
	"errors"

	"github.com/Freeman45/encrypted-Diary/internal/config"
	"github.com/Freeman45/encrypted-Diary/internal/logger"
	"github.com/Freeman45/encrypted-Diary/internal/service"
	"github.com/Freeman45/encrypted-Diary/internal/wallet"
	"github.com/Freeman45/encrypted-Diary/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	connector wallet.Connector
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New assembles the terminal interface over the client services and the
// wallet connector. The logger must write to a file, not the terminal: the
// program owns the screen while it runs.
func New(
	services *service.ClientServices,
	connector wallet.Connector,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*TUI, error) {
	if services == nil || connector == nil || cfg == nil {
		return nil, errors.New("tui: services, connector and config are required")
	}

	return &TUI{
		services:  services,
		connector: connector,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits the program. Returning nil is the normal
// exit path; an error means the terminal program itself failed.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.connector, t.cfg, t.buildInfo)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		t.logger.Err(err).Msg("terminal program failed")
		return err
	}

	return nil
}
