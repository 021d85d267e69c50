package main

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/orbitalswap/points-service/achievement"
	"github.com/orbitalswap/points-service/apiservice"
	"github.com/orbitalswap/points-service/campaign"
	"github.com/orbitalswap/points-service/database"
	"github.com/orbitalswap/points-service/logging"
	"github.com/orbitalswap/points-service/multicall"
	"github.com/orbitalswap/points-service/shared"
)

func startQueryService(cfg shared.Config, useDB bool) error {
	logger := logging.Logger()
	registry, ifos, err := loadCampaigns(useDB)
	if err != nil {
		return err
	}
	logger.Info().Int("campaigns", registry.Len()).Int("ifos", len(ifos)).Msg("campaigns loaded")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RPCTimeout)*time.Second)
	client, err := ethclient.DialContext(ctx, cfg.RPC)
	cancel()
	if err != nil {
		return err
	}
	defer client.Close()

	caller, err := multicall.NewCaller(client, common.HexToAddress(cfg.MulticallAddress), cfg.MaxCallsPerBatch, time.Duration(cfg.RPCTimeout)*time.Second)
	if err != nil {
		return err
	}
	agg, err := achievement.NewAggregator(registry, ifos, caller, common.HexToAddress(cfg.PointCenterAddress), logger)
	if err != nil {
		return err
	}
	apiservice.InitService(agg, registry, time.Duration(cfg.CacheTTL)*time.Second, useDB)
	return apiservice.StartGinService()
}

// loadCampaigns builds the registry and ifo list once per process.
func loadCampaigns(useDB bool) (*campaign.Registry, []campaign.IfoDescriptor, error) {
	if !useDB {
		registry, err := campaign.BuildRegistry(nil)
		if err != nil {
			return nil, nil, err
		}
		ifos, err := campaign.BuildIfos(nil)
		return registry, ifos, err
	}
	storedCampaigns, err := database.DBGetCampaigns()
	if err != nil {
		return nil, nil, err
	}
	registry, err := campaign.BuildRegistry(storedCampaigns)
	if err != nil {
		return nil, nil, err
	}
	storedIfos, err := database.DBGetIfos()
	if err != nil {
		return nil, nil, err
	}
	ifos, err := campaign.BuildIfos(storedIfos)
	if err != nil {
		return nil, nil, err
	}
	return registry, ifos, nil
}

// syncDefaultCampaigns writes the built-in campaigns and ifos mongo does not
// hold yet. Stored rows, retired ones included, are left untouched.
func syncDefaultCampaigns() error {
	storedCampaigns, err := database.DBGetCampaigns()
	if err != nil {
		return err
	}
	storedIfos, err := database.DBGetIfos()
	if err != nil {
		return err
	}
	campaigns, ifos, err := pendingDefaults(storedCampaigns, storedIfos)
	if err != nil {
		return err
	}
	lg := logging.Logger()
	lg.Info().Int("campaigns", len(campaigns)).Int("ifos", len(ifos)).Msg("syncing built-in campaigns")
	if err := database.DBSaveCampaigns(campaigns); err != nil {
		return err
	}
	return database.DBSaveIfos(ifos)
}

func pendingDefaults(storedCampaigns []shared.CampaignData, storedIfos []shared.IfoData) ([]shared.CampaignData, []shared.IfoData, error) {
	knownIDs := make(map[string]struct{}, len(storedCampaigns))
	for _, d := range storedCampaigns {
		knownIDs[d.CampaignID] = struct{}{}
	}
	var campaigns []shared.CampaignData
	for _, c := range campaign.DefaultCampaigns() {
		if _, ok := knownIDs[c.ID]; ok {
			continue
		}
		d, err := campaign.ToData(c)
		if err != nil {
			return nil, nil, err
		}
		campaigns = append(campaigns, d)
	}

	knownAddrs := make(map[common.Address]struct{}, len(storedIfos))
	for _, d := range storedIfos {
		knownAddrs[common.HexToAddress(d.Address)] = struct{}{}
	}
	var ifos []shared.IfoData
	for _, ifo := range campaign.DefaultIfos() {
		if _, ok := knownAddrs[ifo.Address]; ok {
			continue
		}
		ifos = append(ifos, campaign.IfoToData(ifo))
	}
	return campaigns, ifos, nil
}
