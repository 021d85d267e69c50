package apiservice

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

func buildGinErrorRespond(err error) *APIRespond {
	errStr := err.Error()
	respond := APIRespond{
		Result: nil,
		Error:  &errStr,
	}
	return &respond
}

func achievementCacheKey(account common.Address) string {
	return "achievements_" + strings.ToLower(account.Hex())
}
