package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/orbitalswap/points-service/campaign"
	"github.com/orbitalswap/points-service/database"
	"github.com/orbitalswap/points-service/logging"
)

func main() {
	logger := logging.Logger()
	var err error
	cfg, err = readConfig("./cfg.json")
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}
	err = validate(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid campaign data")
	}
	err = database.ConnectDB(cfg.DBName, cfg.Mongo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect mongo")
	}
	logger.Info().Str("action", cfg.Action).Int("campaigns", len(cfg.Campaigns)).Int("ifos", len(cfg.Ifos)).Msg("start")
	switch cfg.Action {
	case add:
		if err := database.DBSaveCampaigns(cfg.Campaigns); err != nil {
			logger.Fatal().Err(err).Msg("failed to save campaigns")
		}
		if err := database.DBSaveIfos(cfg.Ifos); err != nil {
			logger.Fatal().Err(err).Msg("failed to save ifos")
		}
	case remove:
		ids, addresses := retireTargets(cfg)
		if err := database.DBDeactivateCampaigns(ids); err != nil {
			logger.Fatal().Err(err).Msg("failed to deactivate campaigns")
		}
		if err := database.DBDeactivateIfos(addresses); err != nil {
			logger.Fatal().Err(err).Msg("failed to deactivate ifos")
		}
	}
	logger.Info().Msg("done")
}

// validate rejects rows the service would fail to load at startup.
func validate(c Config) error {
	if c.Action == remove {
		for _, v := range c.Ifos {
			if !common.IsHexAddress(v.Address) {
				return fmt.Errorf("ifo %s: invalid address %q", v.IfoID, v.Address)
			}
		}
		return nil
	}
	for _, v := range c.Campaigns {
		if _, err := campaign.FromData(v); err != nil {
			return err
		}
	}
	for _, v := range c.Ifos {
		if _, err := campaign.IfoFromData(v); err != nil {
			return err
		}
	}
	return nil
}

// retireTargets lists the campaign ids and checksum ifo addresses a remove
// action deactivates.
func retireTargets(c Config) ([]string, []string) {
	ids := make([]string, 0, len(c.Campaigns))
	for _, v := range c.Campaigns {
		ids = append(ids, v.CampaignID)
	}
	addresses := make([]string, 0, len(c.Ifos))
	for _, v := range c.Ifos {
		addresses = append(addresses, common.HexToAddress(v.Address).Hex())
	}
	return ids, addresses
}
