package apiservice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK          = "ok"
	outcomeCached      = "cached"
	outcomeBadRequest  = "bad_request"
	outcomeUnavailable = "unavailable"
)

var (
	achievementRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "points",
		Name:      "achievement_requests_total",
		Help:      "Achievement lookups by outcome.",
	}, []string{"outcome"})

	achievementDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "points",
		Name:      "achievement_aggregation_seconds",
		Help:      "Time spent reading eligibility on chain and aggregating it.",
		Buckets:   prometheus.DefBuckets,
	})

	achievementsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "points",
		Name:      "achievements_returned",
		Help:      "Number of achievements returned per successful lookup.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
	})
)
