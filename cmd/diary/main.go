package main

import (
	"fmt"

	"github.com/Freeman45/encrypted-Diary/internal/client"
	"github.com/Freeman45/encrypted-Diary/internal/config"
	"github.com/Freeman45/encrypted-Diary/internal/logger"
	"github.com/Freeman45/encrypted-Diary/internal/provider"
	"github.com/Freeman45/encrypted-Diary/internal/service"
	"github.com/Freeman45/encrypted-Diary/internal/store"
	"github.com/Freeman45/encrypted-Diary/internal/tui"
	"github.com/Freeman45/encrypted-Diary/internal/wallet"
	"github.com/Freeman45/encrypted-Diary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("diary-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	walletProvider, err := provider.NewJSONRPCProvider(cfg.Wallet, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create wallet provider")
	}

	connector := wallet.NewConnector(walletProvider, cfg.Chain, cfg.Contract, log)

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, connector, cfg.Contract)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, connector, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, connector, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
