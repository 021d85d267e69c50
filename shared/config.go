package shared

import (
	"errors"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

var ServiceCfg Config

type Config struct {
	APIPort            int    `json:"apiport"`
	Mode               string `json:"mode"`
	MongoAddress       string `json:"mongo"`
	MongoDB            string `json:"mongodb"`
	RPC                string `json:"rpc"`
	MulticallAddress   string `json:"multicall"`
	PointCenterAddress string `json:"pointcenter"`
	LogLevel           string `json:"loglevel"`
	PrettyLog          bool   `json:"prettylog"`
	CacheTTL           int    `json:"cachettl"`
	MaxCallsPerBatch   int    `json:"batchsize"`
	RPCTimeout         int    `json:"rpctimeout"`
}

// Environment variables, applied last. They also may come from a .env file.
const (
	EnvRPC         = "POINTS_RPC_URL"
	EnvMongo       = "POINTS_MONGO"
	EnvMulticall   = "POINTS_MULTICALL_ADDRESS"
	EnvPointCenter = "POINTS_POINTCENTER_ADDRESS"
	EnvAPIPort     = "POINTS_APIPORT"
)

func ReadConfigAndArg() {
	cfg, err := LoadConfig("./cfg.json", os.Args[1:])
	if err != nil {
		log.Fatalln(err)
	}
	ServiceCfg = cfg
}

// LoadConfig reads the json config at path, fills unset fields from flags in
// args (which carry the defaults), then applies environment overrides.
func LoadConfig(path string, args []string) (Config, error) {
	var tempCfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		log.Println(err)
	}
	if len(data) > 0 {
		err = json.Unmarshal(data, &tempCfg)
		if err != nil {
			return tempCfg, err
		}
	}

	fs := flag.NewFlagSet("points-service", flag.ContinueOnError)
	argMode := fs.String("mode", DefaultMode, "set service mode")
	argPort := fs.Int("port", DefaultAPIPort, "set api port")
	argMongo := fs.String("mongo", DefaultMongoAddress, "set mongo address")
	argRPC := fs.String("rpc", DefaultRPC, "set evm rpc endpoint")
	argLogLevel := fs.String("loglevel", DefaultLogLevel, "set log level")
	err = fs.Parse(args)
	if err != nil {
		return tempCfg, err
	}
	if tempCfg.APIPort == 0 {
		tempCfg.APIPort = *argPort
	}
	if tempCfg.Mode == "" {
		tempCfg.Mode = *argMode
	}
	if tempCfg.MongoAddress == "" {
		tempCfg.MongoAddress = *argMongo
	}
	if tempCfg.RPC == "" {
		tempCfg.RPC = *argRPC
	}
	if tempCfg.LogLevel == "" {
		tempCfg.LogLevel = *argLogLevel
	}
	if tempCfg.MongoDB == "" {
		tempCfg.MongoDB = DefaultMongoDB
	}
	if tempCfg.MulticallAddress == "" {
		tempCfg.MulticallAddress = DefaultMulticallAddress
	}
	if tempCfg.PointCenterAddress == "" {
		tempCfg.PointCenterAddress = DefaultPointCenterAddress
	}
	if tempCfg.CacheTTL == 0 {
		tempCfg.CacheTTL = DefaultCacheTTL
	}
	if tempCfg.MaxCallsPerBatch == 0 {
		tempCfg.MaxCallsPerBatch = DefaultMaxCallsPerBatch
	}
	if tempCfg.RPCTimeout == 0 {
		tempCfg.RPCTimeout = DefaultRPCTimeout
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return tempCfg, err
	}
	if v := os.Getenv(EnvRPC); v != "" {
		tempCfg.RPC = v
	}
	if v := os.Getenv(EnvMongo); v != "" {
		tempCfg.MongoAddress = v
	}
	if v := os.Getenv(EnvMulticall); v != "" {
		tempCfg.MulticallAddress = v
	}
	if v := os.Getenv(EnvPointCenter); v != "" {
		tempCfg.PointCenterAddress = v
	}
	if v := os.Getenv(EnvAPIPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return tempCfg, errors.New("invalid " + EnvAPIPort + ": " + v)
		}
		tempCfg.APIPort = port
	}

	return tempCfg, tempCfg.Validate()
}

func (cfg Config) Validate() error {
	if cfg.Mode != QUERYMODE && cfg.Mode != SYNCMODE {
		return errors.New("invalid mode: " + cfg.Mode)
	}
	if !common.IsHexAddress(cfg.MulticallAddress) {
		return errors.New("invalid multicall address: " + cfg.MulticallAddress)
	}
	if !common.IsHexAddress(cfg.PointCenterAddress) {
		return errors.New("invalid point center address: " + cfg.PointCenterAddress)
	}
	if cfg.MaxCallsPerBatch < 0 {
		return errors.New("invalid batchsize")
	}
	return nil
}
