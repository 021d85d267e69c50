package campaign

import (
	"github.com/ethereum/go-ethereum/common"
)

// IfoDescriptor ties an IFO contract to the points campaign it rewards. An
// empty CampaignID means the IFO grants no points.
type IfoDescriptor struct {
	ID         string         `json:"id"`
	Address    common.Address `json:"address"`
	CampaignID string         `json:"campaignId,omitempty"`
}

func (d IfoDescriptor) HasCampaign() bool {
	return d.CampaignID != ""
}

// FilterEligible keeps the descriptors carrying a campaign id, in order.
func FilterEligible(list []IfoDescriptor) []IfoDescriptor {
	result := make([]IfoDescriptor, 0, len(list))
	for _, d := range list {
		if d.HasCampaign() {
			result = append(result, d)
		}
	}
	return result
}

func FindByCampaignID(list []IfoDescriptor, campaignID string) (IfoDescriptor, bool) {
	for _, d := range list {
		if d.CampaignID == campaignID {
			return d, true
		}
	}
	return IfoDescriptor{}, false
}

// OverlayIfos replaces base descriptors by address with overrides and appends
// the rest. Descriptors at a retired address are dropped.
func OverlayIfos(base, overrides []IfoDescriptor, retired ...common.Address) []IfoDescriptor {
	idx := make(map[common.Address]int, len(base))
	result := make([]IfoDescriptor, 0, len(base)+len(overrides))
	for _, d := range base {
		idx[d.Address] = len(result)
		result = append(result, d)
	}
	for _, d := range overrides {
		if i, ok := idx[d.Address]; ok {
			result[i] = d
			continue
		}
		idx[d.Address] = len(result)
		result = append(result, d)
	}
	if len(retired) == 0 {
		return result
	}
	gone := make(map[common.Address]struct{}, len(retired))
	for _, addr := range retired {
		gone[addr] = struct{}{}
	}
	kept := result[:0]
	for _, d := range result {
		if _, ok := gone[d.Address]; !ok {
			kept = append(kept, d)
		}
	}
	return kept
}
