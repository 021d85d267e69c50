package achievement

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbitalswap/points-service/campaign"
	"github.com/orbitalswap/points-service/multicall"
	"github.com/rs/zerolog"
)

// ErrAchievementsUnavailable marks a failed lookup. Callers must not read it
// as "no achievements".
var ErrAchievementsUnavailable = errors.New("achievements temporarily unavailable")

const (
	methodCheckClaimStatus = "checkClaimStatus"
	methodIfos             = "ifos"
)

// BatchReader performs batched contract reads, one result per call. A nil
// result marks a call that failed on its own.
type BatchReader interface {
	Multicall(ctx context.Context, contractABI abi.ABI, calls []multicall.Call, opts multicall.Options) ([][]interface{}, error)
}

type Achievement struct {
	Address     string                    `json:"address"`
	ID          string                    `json:"id"`
	Type        campaign.CampaignType     `json:"type"`
	Title       campaign.TranslatableText `json:"title"`
	Description campaign.TranslatableText `json:"description"`
	Badge       string                    `json:"badge"`
	Points      int64                     `json:"points"`
}

// EligibilityResult is the point center's answer for one IFO.
type EligibilityResult struct {
	CampaignID   string
	NumberPoints *big.Int
	Eligible     bool
}

type Aggregator struct {
	registry    *campaign.Registry
	ifos        []campaign.IfoDescriptor
	reader      BatchReader
	pointCenter common.Address
	abi         abi.ABI
	logger      zerolog.Logger
}

func NewAggregator(registry *campaign.Registry, ifos []campaign.IfoDescriptor, reader BatchReader, pointCenter common.Address, logger zerolog.Logger) (*Aggregator, error) {
	parsed, err := abi.JSON(strings.NewReader(PointCenterIfoABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse point center abi: %w", err)
	}
	return &Aggregator{
		registry:    registry,
		ifos:        append([]campaign.IfoDescriptor(nil), ifos...),
		reader:      reader,
		pointCenter: pointCenter,
		abi:         parsed,
		logger:      logger.With().Str("component", "achievement").Logger(),
	}, nil
}

// ClaimableAchievements lists the IFO achievements account can claim points
// for. Any batch transport failure fails the whole call.
func (a *Aggregator) ClaimableAchievements(ctx context.Context, account common.Address) ([]Achievement, error) {
	ifos := campaign.FilterEligible(a.ifos)
	if len(ifos) == 0 {
		return []Achievement{}, nil
	}
	results, err := a.Eligibility(ctx, account, ifos)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAchievementsUnavailable, err)
	}
	return a.Aggregate(results, ifos), nil
}

// Eligibility returns one result per ifo, positionally aligned. It first asks
// the point center which IFOs account can claim, then reads the campaign
// info of the claimable ones. Failed calls leave a nil result.
func (a *Aggregator) Eligibility(ctx context.Context, account common.Address, ifos []campaign.IfoDescriptor) ([]*EligibilityResult, error) {
	claimStatusCalls := make([]multicall.Call, len(ifos))
	for i, ifo := range ifos {
		claimStatusCalls[i] = multicall.Call{
			Address: a.pointCenter,
			Name:    methodCheckClaimStatus,
			Params:  []interface{}{account, ifo.Address},
		}
	}
	claimStatuses, err := a.reader.Multicall(ctx, a.abi, claimStatusCalls, multicall.Options{RequireSuccess: false})
	if err != nil {
		return nil, err
	}
	if len(claimStatuses) != len(ifos) {
		return nil, fmt.Errorf("got %d claim statuses for %d ifos", len(claimStatuses), len(ifos))
	}

	var claimable []int
	for i, status := range claimStatuses {
		if len(status) == 0 {
			continue
		}
		if ok, _ := status[0].(bool); ok {
			claimable = append(claimable, i)
		}
	}

	results := make([]*EligibilityResult, len(ifos))
	if len(claimable) == 0 {
		return results, nil
	}

	ifoCalls := make([]multicall.Call, len(claimable))
	for i, idx := range claimable {
		ifoCalls[i] = multicall.Call{
			Address: a.pointCenter,
			Name:    methodIfos,
			Params:  []interface{}{ifos[idx].Address},
		}
	}
	ifoData, err := a.reader.Multicall(ctx, a.abi, ifoCalls, multicall.Options{RequireSuccess: false})
	if err != nil {
		return nil, err
	}
	if len(ifoData) != len(claimable) {
		return nil, fmt.Errorf("got %d ifo entries for %d claimable ifos", len(ifoData), len(claimable))
	}
	for i, idx := range claimable {
		campaignID, points, ok := parseIfoEntry(ifoData[i])
		if !ok {
			continue
		}
		results[idx] = &EligibilityResult{
			CampaignID:   campaignID.String(),
			NumberPoints: points,
			Eligible:     true,
		}
	}
	return results, nil
}

// parseIfoEntry reads (thresholdToClaim, campaignId, numberPoints).
func parseIfoEntry(values []interface{}) (*big.Int, *big.Int, bool) {
	if len(values) != 3 {
		return nil, nil, false
	}
	campaignID, ok := values[1].(*big.Int)
	if !ok || campaignID == nil {
		return nil, nil, false
	}
	points, ok := values[2].(*big.Int)
	if !ok {
		return nil, nil, false
	}
	return campaignID, points, true
}

// Aggregate turns eligibility results into achievements, keeping input
// order. Results for campaigns missing from the registry are dropped.
func (a *Aggregator) Aggregate(results []*EligibilityResult, ifos []campaign.IfoDescriptor) []Achievement {
	achievements := []Achievement{}
	for _, r := range results {
		if r == nil || !r.Eligible {
			continue
		}
		meta, ok := a.registry.Get(r.CampaignID)
		if !ok {
			continue
		}
		ifo, ok := campaign.FindByCampaignID(ifos, r.CampaignID)
		if !ok {
			a.logger.Error().Str("campaign", r.CampaignID).Msg("claimable campaign has no matching ifo descriptor")
			continue
		}
		points, err := NarrowPoints(r.NumberPoints)
		if err != nil {
			a.logger.Error().Err(err).Str("campaign", r.CampaignID).Msg("skipping achievement")
			continue
		}
		achievements = append(achievements, Achievement{
			Address:     ifo.Address.Hex(),
			ID:          r.CampaignID,
			Type:        meta.Type,
			Title:       meta.AchievementTitle(),
			Description: meta.AchievementDescription(),
			Badge:       meta.Badge,
			Points:      points,
		})
	}
	return achievements
}
