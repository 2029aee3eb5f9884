package main

import (
	"fmt"

	"github.com/Freeman45/encrypted-Diary/internal/config"
	"github.com/Freeman45/encrypted-Diary/internal/logger"
	"github.com/Freeman45/encrypted-Diary/internal/server"
	"github.com/Freeman45/encrypted-Diary/internal/walletsim"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("walletsim")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	sim := walletsim.NewSimulator()
	handlers := walletsim.NewHandler(sim, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("account", walletsim.DevAddress).Msg("wallet simulator ready")

	srv.RunServer()
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
