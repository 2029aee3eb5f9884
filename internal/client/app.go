package client

import (
	"context"
	"errors"

	"github.com/Freeman45/encrypted-Diary/internal/logger"
	"github.com/Freeman45/encrypted-Diary/internal/service"
	"github.com/Freeman45/encrypted-Diary/internal/tui"
	"github.com/Freeman45/encrypted-Diary/internal/wallet"
)

// App is the interactive diary client. It owns no goroutines of its own:
// the terminal program drives everything, App only brackets its lifetime.
type App struct {
	services  *service.ClientServices
	connector wallet.Connector
	ui        *tui.TUI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, connector wallet.Connector, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || connector == nil || ui == nil {
		return nil, errors.New("client: services, connector and ui are required")
	}

	return &App{
		services:  services,
		connector: connector,
		ui:        ui,
		logger:    logger,
	}, nil
}

// Run implements [Client]. It blocks in the terminal program until the user
// quits, then clears the wallet session and the in-memory key material.
func (a *App) Run() error {
	ctx := context.Background()

	a.logger.Info().Msg("diary client started")

	defer func() {
		// после выхода из TUI в памяти не должно остаться ни ключа,
		// ни расшифрованных записей
		a.services.DiaryService.Lock()
		a.connector.Disconnect()
		a.logger.Info().Msg("diary client stopped, session wiped")
	}()

	if err := a.ui.Run(ctx); err != nil {
		return err
	}

	return nil
}
