package shared

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DB_OPERATION_TIMEOUT time.Duration = 1 * time.Second
)

const (
	DefaultAPIPort          = 9001
	DefaultMongoAddress     = ""
	DefaultMongoDB          = "points"
	DefaultRPC              = "https://bsc-dataseed.binance.org"
	DefaultMode             = QUERYMODE
	DefaultLogLevel         = "info"
	DefaultCacheTTL         = 30
	DefaultMaxCallsPerBatch = 100
	DefaultRPCTimeout       = 10
	// Multicall2 and point center IFO on BSC mainnet.
	DefaultMulticallAddress   = "0xfF6FD90A470Aaa0c1B8A54681746b07AcdFedc9B"
	DefaultPointCenterAddress = "0x3C6919b132462C1FEc572c6300E83191f4F0012a"
)

const (
	VERSION   = "1.0.0"
	QUERYMODE = "query"
	// SYNCMODE only refreshes campaign data in mongo and exits.
	SYNCMODE = "campaignsync"
)

const (
	MONGO_STATUS_OK   = "connected"
	MONGO_STATUS_NOK  = "disconnected"
	HEALTH_STATUS_OK  = "healthy"
	HEALTH_STATUS_NOK = "unhealthy"
)
