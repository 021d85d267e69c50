package apiservice

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/orbitalswap/points-service/achievement"
	"github.com/orbitalswap/points-service/campaign"
	"github.com/orbitalswap/points-service/database"
	"github.com/orbitalswap/points-service/logging"
	"github.com/orbitalswap/points-service/shared"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AchievementSource computes the claimable achievements of an account.
type AchievementSource interface {
	ClaimableAchievements(ctx context.Context, account common.Address) ([]achievement.Achievement, error)
}

var (
	achievementSource AchievementSource
	campaignRegistry  *campaign.Registry
	mongoEnabled      bool
	dbPing            = database.DBPing
)

// InitService wires the handlers. withDB tells the health check whether mongo
// is part of this deployment.
func InitService(source AchievementSource, registry *campaign.Registry, cacheTTL time.Duration, withDB bool) {
	achievementSource = source
	campaignRegistry = registry
	mongoEnabled = withDB
	initCache(cacheTTL)
}

func StartGinService() error {
	lg := logging.Logger()
	lg.Info().Int("port", shared.ServiceCfg.APIPort).Msg("initiating api-service...")
	r := newRouter()
	return r.Run("0.0.0.0:" + strconv.Itoa(shared.ServiceCfg.APIPort))
}

func newRouter() *gin.Engine {
	r := gin.Default()
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Content-Type"},
	}))
	r.GET("/health", APIHealthCheck)
	r.GET("/achievements", APIGetAchievements)
	r.GET("/campaigns", APIGetCampaigns)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// APIHealthCheck reports unhealthy only when a configured mongo is unreachable.
// Without mongo the service runs on built-in campaigns and stays healthy.
func APIHealthCheck(c *gin.Context) {
	status := shared.HEALTH_STATUS_OK
	mongoStatus := shared.MONGO_STATUS_NOK
	if mongoEnabled {
		mongoStatus = shared.MONGO_STATUS_OK
		if err := dbPing(c.Request.Context()); err != nil {
			status = shared.HEALTH_STATUS_NOK
			mongoStatus = shared.MONGO_STATUS_NOK
		}
	}
	c.JSON(http.StatusOK, APIHealthRespond{
		Status:  status,
		Mongo:   mongoStatus,
		Version: shared.VERSION,
	})
}

// APIGetAchievements answers 503, never an empty list, when the on-chain
// lookup fails, so clients can show a retry state.
func APIGetAchievements(c *gin.Context) {
	account := c.Query("account")
	if !common.IsHexAddress(account) {
		achievementRequests.WithLabelValues(outcomeBadRequest).Inc()
		c.JSON(http.StatusBadRequest, buildGinErrorRespond(errors.New("invalid account address")))
		return
	}
	addr := common.HexToAddress(account)
	cacheKey := achievementCacheKey(addr)

	var result []achievement.Achievement
	if err := cacheGet(cacheKey, &result); err == nil {
		achievementRequests.WithLabelValues(outcomeCached).Inc()
		c.JSON(http.StatusOK, APIRespond{Result: result, Error: nil})
		return
	}

	startTime := time.Now()
	result, err := achievementSource.ClaimableAchievements(c.Request.Context(), addr)
	achievementDuration.Observe(time.Since(startTime).Seconds())
	if err != nil {
		achievementRequests.WithLabelValues(outcomeUnavailable).Inc()
		lg := logging.Logger()
		lg.Error().Err(err).Str("account", addr.Hex()).Msg("achievement lookup failed")
		c.JSON(http.StatusServiceUnavailable, buildGinErrorRespond(err))
		return
	}
	if err := cacheStore(cacheKey, result); err != nil {
		lg := logging.Logger()
		lg.Warn().Err(err).Msg("failed to cache achievements")
	}
	achievementRequests.WithLabelValues(outcomeOK).Inc()
	achievementsReturned.Observe(float64(len(result)))
	c.JSON(http.StatusOK, APIRespond{Result: result, Error: nil})
}

func APIGetCampaigns(c *gin.Context) {
	c.JSON(http.StatusOK, APIRespond{Result: campaignRegistry.Campaigns(), Error: nil})
}
