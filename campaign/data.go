package campaign

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/orbitalswap/points-service/shared"
)

// FromData converts a stored campaign row. Text fields holding a json object
// are read as translatable text, anything else as plain text.
func FromData(d shared.CampaignData) (Campaign, error) {
	ct, err := ParseCampaignType(d.Type)
	if err != nil {
		return Campaign{}, fmt.Errorf("campaign %s: %w", d.CampaignID, err)
	}
	title, err := textFromData(d.Title)
	if err != nil {
		return Campaign{}, fmt.Errorf("campaign %s title: %w", d.CampaignID, err)
	}
	description, err := textFromData(d.Description)
	if err != nil {
		return Campaign{}, fmt.Errorf("campaign %s description: %w", d.CampaignID, err)
	}
	return Campaign{
		ID:          d.CampaignID,
		Type:        ct,
		Title:       title,
		Description: description,
		Badge:       d.Badge,
	}, nil
}

func ToData(c Campaign) (shared.CampaignData, error) {
	title, err := textToData(c.Title)
	if err != nil {
		return shared.CampaignData{}, err
	}
	description, err := textToData(c.Description)
	if err != nil {
		return shared.CampaignData{}, err
	}
	return shared.CampaignData{
		CampaignID:  c.ID,
		Type:        c.Type.String(),
		Title:       title,
		Description: description,
		Badge:       c.Badge,
		IsActive:    true,
	}, nil
}

func textFromData(s string) (TranslatableText, error) {
	if !strings.HasPrefix(strings.TrimSpace(s), "{") {
		return Text(s), nil
	}
	var t TranslatableText
	if err := json.Unmarshal([]byte(s), &t); err != nil {
		return TranslatableText{}, err
	}
	return t, nil
}

func textToData(t TranslatableText) (string, error) {
	if !t.IsTemplate() {
		return t.Key, nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func IfoFromData(d shared.IfoData) (IfoDescriptor, error) {
	if !common.IsHexAddress(d.Address) {
		return IfoDescriptor{}, fmt.Errorf("ifo %s: invalid address %q", d.IfoID, d.Address)
	}
	return IfoDescriptor{
		ID:         d.IfoID,
		Address:    common.HexToAddress(d.Address),
		CampaignID: d.CampaignID,
	}, nil
}

func IfoToData(d IfoDescriptor) shared.IfoData {
	return shared.IfoData{
		IfoID:      d.ID,
		Address:    d.Address.Hex(),
		CampaignID: d.CampaignID,
		IsActive:   true,
	}
}

// BuildRegistry overlays stored campaigns on the built-in ones. An inactive
// stored row retires the campaign with its id, built-in or not.
func BuildRegistry(stored []shared.CampaignData) (*Registry, error) {
	overrides := make([]Campaign, 0, len(stored))
	var retired []string
	for _, d := range stored {
		if !d.IsActive {
			retired = append(retired, d.CampaignID)
			continue
		}
		c, err := FromData(d)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, c)
	}
	return NewRegistry(Overlay(DefaultCampaigns(), overrides, retired...)...)
}

// BuildIfos overlays stored ifo descriptors on the built-in list. An inactive
// stored row retires the descriptor at its address.
func BuildIfos(stored []shared.IfoData) ([]IfoDescriptor, error) {
	overrides := make([]IfoDescriptor, 0, len(stored))
	var retired []common.Address
	for _, d := range stored {
		if !common.IsHexAddress(d.Address) {
			return nil, fmt.Errorf("ifo %s: invalid address %q", d.IfoID, d.Address)
		}
		if !d.IsActive {
			retired = append(retired, common.HexToAddress(d.Address))
			continue
		}
		ifo, err := IfoFromData(d)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, ifo)
	}
	return OverlayIfos(DefaultIfos(), overrides, retired...), nil
}
