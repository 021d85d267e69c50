package main

import (
	"errors"
	"os"

	"github.com/ethereum/go-ethereum/common"
	jsoniter "github.com/json-iterator/go"
	"github.com/orbitalswap/points-service/shared"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	add    = "add"
	remove = "remove"
)

type Config struct {
	Mongo     string                `json:"mongo"`
	DBName    string                `json:"dbname"`
	Action    string                `json:"action"`
	Campaigns []shared.CampaignData `json:"campaigns"`
	Ifos      []shared.IfoData      `json:"ifos"`
}

var cfg Config

func readConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	err = json.Unmarshal(data, &c)
	if err != nil {
		return c, err
	}
	if c.Action != add && c.Action != remove {
		return c, errors.New("invalid action")
	}
	if len(c.Campaigns) == 0 && len(c.Ifos) == 0 {
		return c, errors.New("nothing to do: campaigns and ifos are empty")
	}
	if c.Action == add {
		for i := range c.Campaigns {
			c.Campaigns[i].IsActive = true
		}
		for i := range c.Ifos {
			c.Ifos[i].IsActive = true
			if common.IsHexAddress(c.Ifos[i].Address) {
				c.Ifos[i].Address = common.HexToAddress(c.Ifos[i].Address).Hex()
			}
		}
	}
	if c.DBName == "" {
		c.DBName = shared.DefaultMongoDB
	}
	return c, nil
}
