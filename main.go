package main

import (
	"log"

	"github.com/orbitalswap/points-service/database"
	"github.com/orbitalswap/points-service/logging"
	"github.com/orbitalswap/points-service/shared"
)

func main() {
	shared.ReadConfigAndArg()
	cfg := shared.ServiceCfg
	if err := logging.InitLogger(cfg.LogLevel, cfg.PrettyLog); err != nil {
		log.Fatalln(err)
	}
	logger := logging.Logger()

	useDB := cfg.MongoAddress != ""
	if useDB {
		if err := database.ConnectDB(cfg.MongoDB, cfg.MongoAddress); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect mongo")
		}
		if err := database.DBCreateCampaignIndex(); err != nil {
			logger.Fatal().Err(err).Msg("failed to create indexes")
		}
	} else {
		logger.Warn().Msg("no mongo address configured, serving built-in campaigns only")
	}

	switch cfg.Mode {
	case shared.SYNCMODE:
		if !useDB {
			logger.Fatal().Msg("campaignsync mode requires mongo")
		}
		if err := syncDefaultCampaigns(); err != nil {
			logger.Fatal().Err(err).Msg("campaign sync failed")
		}
		logger.Info().Msg("campaign sync done")
	case shared.QUERYMODE:
		if err := startQueryService(cfg, useDB); err != nil {
			logger.Fatal().Err(err).Msg("api-service stopped")
		}
	}
}
